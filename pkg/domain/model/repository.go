package model

import (
	"time"

	"github.com/leetvault/leetvault/pkg/domain/types"
)

// Repository is one candidate returned by discovery for an installation.
type Repository struct {
	ID            int64
	Name          string
	FullName      types.RepoFullName
	IsPrivate     bool
	DefaultBranch types.BranchName
	HTMLURL       string
	Description   *string
	Language      *string
	UpdatedAt     *time.Time
}
