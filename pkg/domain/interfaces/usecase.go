package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . Onboarding

import (
	"context"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
)

// Onboarding is the action surface the presentation adapters drive.
type Onboarding interface {
	Start(ctx context.Context) error
	View() model.ViewState

	EditCredentials()
	CancelEdit(ctx context.Context) error
	SaveCredentials(ctx context.Context, creds model.Credentials) error

	ConnectGitHub(ctx context.Context) (string, error)
	CompleteInstallation(ctx context.Context, installationID types.InstallationID) error
	RefreshRepositories(ctx context.Context) error
	ActivateRepository(ctx context.Context, repo types.RepoFullName, branch types.BranchName) error
	DeactivateRepository(ctx context.Context) error
}
