package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/mock"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const testEmail = types.Email("alice@example.com")

var testIdentity = &model.Identity{
	Subject: "1234567890",
	Email:   "Alice@Example.com",
}

// backendMocks bundles the backend-facing mocks with defaults that describe a
// returning user with nothing connected.
type backendMocks struct {
	provisioner *mock.AccountProvisionerMock
	credentials *mock.CredentialStoreMock
	github      *mock.GitHubLinkManagerMock
}

func newBackendMocks(t *testing.T) *backendMocks {
	return &backendMocks{
		provisioner: &mock.AccountProvisionerMock{
			EnsureFunc: func(ctx context.Context, email types.Email) (*model.AccountSnapshot, error) {
				gt.V(t, email).Equal(testEmail)
				return &model.AccountSnapshot{}, nil
			},
			CreateFunc: func(ctx context.Context, email types.Email) error {
				return nil
			},
		},
		credentials: &mock.CredentialStoreMock{
			FetchFunc: func(ctx context.Context, email types.Email) (*model.Credentials, error) {
				return &model.Credentials{}, nil
			},
			SaveFunc: func(ctx context.Context, email types.Email, creds model.Credentials) (*model.Credentials, error) {
				creds.Configured = true
				return &creds, nil
			},
		},
		github: &mock.GitHubLinkManagerMock{
			RequestInstallLinkFunc: func(ctx context.Context, email types.Email) (string, error) {
				return "https://github.com/apps/leetvault/installations/new?state=abc", nil
			},
			ListRepositoriesFunc: func(ctx context.Context, installationID types.InstallationID) ([]*model.Repository, error) {
				return nil, nil
			},
			ActivateFunc: func(ctx context.Context, input *model.ActivateInput) (*model.RepoActivation, error) {
				return &model.RepoActivation{
					RepoFullName:  input.RepoFullName,
					DefaultBranch: input.DefaultBranch,
					IsActive:      true,
					ActivatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil
			},
			DeactivateFunc: func(ctx context.Context, email types.Email) error {
				return nil
			},
		},
	}
}

func (x *backendMocks) orchestrator(opts ...infra.Option) *usecase.Orchestrator {
	base := []infra.Option{
		infra.WithAccountProvisioner(x.provisioner),
		infra.WithCredentialStore(x.credentials),
		infra.WithGitHubLink(x.github),
	}
	uc := usecase.New(infra.New(append(base, opts...)...))
	return uc.NewOrchestrator(testIdentity)
}

func configuredCreds() *model.Credentials {
	return &model.Credentials{
		SessionCookie: "session-cookie-value",
		CSRFToken:     "csrf-token-value",
		Username:      "alice_lc",
		Configured:    true,
	}
}

func repo(fullName types.RepoFullName, branch types.BranchName) *model.Repository {
	return &model.Repository{
		ID:            1,
		Name:          fullName.Name(),
		FullName:      fullName,
		DefaultBranch: branch,
	}
}

func apiError(kind error, status int, detail string) error {
	return &types.APIError{Kind: kind, StatusCode: status, Detail: detail}
}

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New())
	o := uc.NewOrchestrator(testIdentity)

	v := o.View()
	gt.V(t, v.Phase).Equal(model.PhaseIdle)
	gt.V(t, v.Email).Equal(testEmail)
	gt.V(t, v.GitHub).Equal(model.GitHubDisconnected)
	gt.True(t, v.Activation == nil)
}

func TestNewWithoutClients(t *testing.T) {
	uc := usecase.New(nil)

	_, err := uc.CurrentIdentity(context.Background())
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
	gt.True(t, errors.Is(uc.SignOut(context.Background()), types.ErrInvalidOption))
}
