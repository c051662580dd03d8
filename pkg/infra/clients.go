package infra

import (
	"net/http"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
)

type Clients struct {
	provisioner      interfaces.AccountProvisioner
	credentialStore  interfaces.CredentialStore
	githubLink       interfaces.GitHubLinkManager
	identityProvider interfaces.IdentityProvider
	identityStore    interfaces.IdentityStore
	browser          interfaces.Browser
	httpClient       HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) AccountProvisioner() interfaces.AccountProvisioner {
	return x.provisioner
}
func (x *Clients) CredentialStore() interfaces.CredentialStore {
	return x.credentialStore
}
func (x *Clients) GitHubLink() interfaces.GitHubLinkManager {
	return x.githubLink
}
func (x *Clients) IdentityProvider() interfaces.IdentityProvider {
	return x.identityProvider
}
func (x *Clients) IdentityStore() interfaces.IdentityStore {
	return x.identityStore
}
func (x *Clients) Browser() interfaces.Browser {
	return x.browser
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithAccountProvisioner(client interfaces.AccountProvisioner) Option {
	return func(x *Clients) {
		x.provisioner = client
	}
}

func WithCredentialStore(client interfaces.CredentialStore) Option {
	return func(x *Clients) {
		x.credentialStore = client
	}
}

func WithGitHubLink(client interfaces.GitHubLinkManager) Option {
	return func(x *Clients) {
		x.githubLink = client
	}
}

func WithIdentityProvider(client interfaces.IdentityProvider) Option {
	return func(x *Clients) {
		x.identityProvider = client
	}
}

func WithIdentityStore(store interfaces.IdentityStore) Option {
	return func(x *Clients) {
		x.identityStore = store
	}
}

func WithBrowser(browser interfaces.Browser) Option {
	return func(x *Clients) {
		x.browser = browser
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
