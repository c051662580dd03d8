package infra_test

import (
	"net/http"
	"testing"

	"github.com/leetvault/leetvault/pkg/domain/mock"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.AccountProvisioner()).Equal(nil)
		gt.V(t, clients.CredentialStore()).Equal(nil)
		gt.V(t, clients.GitHubLink()).Equal(nil)
		gt.V(t, clients.Browser()).Equal(nil)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		provisioner := &mock.AccountProvisionerMock{}
		store := &mock.CredentialStoreMock{}
		link := &mock.GitHubLinkManagerMock{}
		idp := &mock.IdentityProviderMock{}
		ids := &mock.IdentityStoreMock{}
		browser := &mock.BrowserMock{}

		clients := infra.New(
			infra.WithAccountProvisioner(provisioner),
			infra.WithCredentialStore(store),
			infra.WithGitHubLink(link),
			infra.WithIdentityProvider(idp),
			infra.WithIdentityStore(ids),
			infra.WithBrowser(browser),
		)

		gt.V(t, clients.AccountProvisioner()).Equal(provisioner)
		gt.V(t, clients.CredentialStore()).Equal(store)
		gt.V(t, clients.GitHubLink()).Equal(link)
		gt.V(t, clients.IdentityProvider()).Equal(idp)
		gt.V(t, clients.IdentityStore()).Equal(ids)
		gt.V(t, clients.Browser()).Equal(browser)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
