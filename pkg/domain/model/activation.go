package model

import (
	"time"

	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RepoActivation is the single sync target of an account. Exclusivity is enforced by the
// backend; the client only ever holds the record returned by the last successful call.
type RepoActivation struct {
	RepoFullName  types.RepoFullName
	DefaultBranch types.BranchName
	IsActive      bool
	ActivatedAt   time.Time
	LastSyncAt    *time.Time
}

type ActivateInput struct {
	Email          types.Email
	InstallationID types.InstallationID
	RepoFullName   types.RepoFullName
	DefaultBranch  types.BranchName
}

func (x *ActivateInput) Validate() error {
	if x.Email == "" {
		return goerr.Wrap(types.ErrValidationFailed, "email is empty")
	}
	if x.InstallationID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "installation ID is empty, connect GitHub first")
	}
	if !x.RepoFullName.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "repository must be in owner/name form",
			goerr.V("repo", x.RepoFullName),
		)
	}
	return nil
}
