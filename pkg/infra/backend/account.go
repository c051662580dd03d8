package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRequest struct {
	Email types.Email `json:"email"`
}

type userCheckResponse struct {
	Success        bool               `json:"success"`
	Message        string             `json:"message"`
	UserID         string             `json:"user_id"`
	Email          string             `json:"email"`
	IsNewUser      bool               `json:"is_new_user"`
	GitHubStatus   bool               `json:"github_status"`
	InstallationID installationID     `json:"installation_id"`
	RepoActivation bool               `json:"repo_activation"`
	ActivatedRepo  *activatedRepoBody `json:"activated_repo"`
}

type activatedRepoBody struct {
	RepoFullName  string     `json:"repo_full_name"`
	DefaultBranch string     `json:"default_branch"`
	IsActive      bool       `json:"is_active"`
	ActivatedAt   timestamp  `json:"activated_at"`
	LastSyncAt    *timestamp `json:"last_sync_at"`
}

func (x *activatedRepoBody) toModel() *model.RepoActivation {
	return &model.RepoActivation{
		RepoFullName:  types.RepoFullName(x.RepoFullName),
		DefaultBranch: types.BranchName(x.DefaultBranch).OrDefault(),
		IsActive:      x.IsActive,
		ActivatedAt:   x.ActivatedAt.Time,
		LastSyncAt:    x.LastSyncAt.ptr(),
	}
}

// installationID accepts both the string and the numeric form of a GitHub installation ID.
type installationID types.InstallationID

func (x *installationID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*x = installationID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "installation_id is neither string nor number")
	}
	*x = installationID(strconv.FormatInt(n, 10))
	return nil
}

// Ensure returns the integration snapshot of the account, creating the account on
// first contact. The call is idempotent and safe to repeat.
func (x *Client) Ensure(ctx context.Context, email types.Email) (*model.AccountSnapshot, error) {
	var resp userCheckResponse
	if _, err := x.call(ctx, &request{
		method:     http.MethodPost,
		path:       "/api/users/check",
		body:       userRequest{Email: email.Normalize()},
		idempotent: true,
		kind:       types.ErrProvisioningFailed,
	}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to check user", goerr.V("email", email))
	}

	snapshot := &model.AccountSnapshot{
		IsNewUser:       resp.IsNewUser,
		GitHubConnected: resp.GitHubStatus,
		InstallationID:  types.InstallationID(resp.InstallationID),
	}
	// The flag and the record must agree; a dangling flag is not an activation.
	if resp.RepoActivation && resp.ActivatedRepo != nil && resp.ActivatedRepo.RepoFullName != "" {
		snapshot.Activation = resp.ActivatedRepo.toModel()
	}

	return snapshot, nil
}

// Create registers the account. An account that already exists (409) is success.
func (x *Client) Create(ctx context.Context, email types.Email) error {
	if _, err := x.call(ctx, &request{
		method: http.MethodPost,
		path:   "/api/users/create",
		body:   userRequest{Email: email.Normalize()},
		kind:   types.ErrProvisioningFailed,
		accept: []int{http.StatusConflict},
	}, nil); err != nil {
		return goerr.Wrap(err, "failed to create user", goerr.V("email", email))
	}
	return nil
}
