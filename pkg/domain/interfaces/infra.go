package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . AccountProvisioner CredentialStore GitHubLinkManager IdentityProvider IdentityStore Browser

import (
	"context"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
)

// AccountProvisioner ensures a backend account exists for an email.
type AccountProvisioner interface {
	// Ensure is an idempotent upsert-and-fetch of the integration snapshot.
	Ensure(ctx context.Context, email types.Email) (*model.AccountSnapshot, error)
	// Create registers the account; an already existing account is not an error.
	Create(ctx context.Context, email types.Email) error
}

// CredentialStore reads and replaces scraped-site credentials.
type CredentialStore interface {
	// Fetch returns Configured=false without error when nothing is stored yet.
	Fetch(ctx context.Context, email types.Email) (*model.Credentials, error)
	Save(ctx context.Context, email types.Email, creds model.Credentials) (*model.Credentials, error)
}

// GitHubLinkManager brokers the GitHub App installation through the backend.
type GitHubLinkManager interface {
	RequestInstallLink(ctx context.Context, email types.Email) (string, error)
	ListRepositories(ctx context.Context, installationID types.InstallationID) ([]*model.Repository, error)
	Activate(ctx context.Context, input *model.ActivateInput) (*model.RepoActivation, error)
	Deactivate(ctx context.Context, email types.Email) error
}

// IdentityProvider runs the interactive sign-in with the external identity provider.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (*model.Identity, error)
}

// IdentityStore keeps the signed-in identity between invocations.
type IdentityStore interface {
	Load(ctx context.Context) (*model.Identity, error)
	Save(ctx context.Context, identity *model.Identity) error
	Delete(ctx context.Context) error
}

type Browser interface {
	Open(url string) error
}
