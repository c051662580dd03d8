package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type installLinkResponse struct {
	InstallationURL string `json:"installation_url"`
	UserID          string `json:"user_id"`
}

// RequestInstallLink returns the URL where the user installs the GitHub App.
func (x *Client) RequestInstallLink(ctx context.Context, email types.Email) (string, error) {
	var resp installLinkResponse
	if _, err := x.call(ctx, &request{
		method:     http.MethodGet,
		path:       "/api/auth/github/install",
		query:      url.Values{"email": {string(email.Normalize())}},
		idempotent: true,
		kind:       types.ErrInstallLinkFailed,
	}, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to request install link", goerr.V("email", email))
	}

	if resp.InstallationURL == "" {
		return "", goerr.Wrap(&types.APIError{Kind: types.ErrInstallLinkFailed, StatusCode: http.StatusOK},
			"install link is empty", goerr.V("email", email))
	}
	return resp.InstallationURL, nil
}

type repositoryBody struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	Private       bool       `json:"private"`
	HTMLURL       string     `json:"html_url"`
	Description   *string    `json:"description"`
	DefaultBranch string     `json:"default_branch"`
	Language      *string    `json:"language"`
	UpdatedAt     *timestamp `json:"updated_at"`
}

type repositoryListResponse struct {
	Repositories []*repositoryBody `json:"repositories"`
	TotalCount   int               `json:"total_count"`
}

// ListRepositories returns the repositories the installation can access, in
// backend order.
func (x *Client) ListRepositories(ctx context.Context, installationID types.InstallationID) ([]*model.Repository, error) {
	if installationID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}

	var resp repositoryListResponse
	if _, err := x.call(ctx, &request{
		method:     http.MethodGet,
		path:       "/api/github/installations/" + string(installationID) + "/repositories",
		idempotent: true,
		kind:       types.ErrRepositoryListFailed,
	}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("installation_id", installationID))
	}

	repos := make([]*model.Repository, 0, len(resp.Repositories))
	for _, r := range resp.Repositories {
		if r == nil {
			continue
		}
		repos = append(repos, &model.Repository{
			ID:            r.ID,
			Name:          r.Name,
			FullName:      types.RepoFullName(r.FullName),
			IsPrivate:     r.Private,
			DefaultBranch: types.BranchName(r.DefaultBranch).OrDefault(),
			HTMLURL:       r.HTMLURL,
			Description:   r.Description,
			Language:      r.Language,
			UpdatedAt:     r.UpdatedAt.ptr(),
		})
	}

	return repos, nil
}

type activateRequest struct {
	Email          types.Email `json:"email"`
	InstallationID string      `json:"installation_id"`
	RepoName       string      `json:"repo_name"`
	DefaultBranch  string      `json:"default_branch"`
}

type activateResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	RepoFullName   string         `json:"repo_full_name"`
	DefaultBranch  string         `json:"default_branch"`
	InstallationID installationID `json:"installation_id"`
	ActivatedAt    timestamp      `json:"activated_at"`
	IsActive       bool           `json:"is_active"`
}

// Activate makes input.RepoFullName the single sync target of the account. The
// backend replaces any previous activation.
func (x *Client) Activate(ctx context.Context, input *model.ActivateInput) (*model.RepoActivation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	branch := input.DefaultBranch.OrDefault()
	var resp activateResponse
	if _, err := x.call(ctx, &request{
		method: http.MethodPost,
		path:   "/api/repos/activate",
		body: activateRequest{
			Email:          input.Email.Normalize(),
			InstallationID: string(input.InstallationID),
			RepoName:       string(input.RepoFullName),
			DefaultBranch:  string(branch),
		},
		kind: types.ErrActivationFailed,
	}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to activate repository", goerr.V("repo", input.RepoFullName))
	}

	activation := &model.RepoActivation{
		RepoFullName:  types.RepoFullName(resp.RepoFullName),
		DefaultBranch: types.BranchName(resp.DefaultBranch),
		IsActive:      resp.IsActive,
		ActivatedAt:   resp.ActivatedAt.Time,
	}
	if activation.RepoFullName == "" {
		activation.RepoFullName = input.RepoFullName
	}
	if activation.DefaultBranch == "" {
		activation.DefaultBranch = branch
	}

	return activation, nil
}

// Deactivate removes the account's activation. A missing activation (404) is a failure.
func (x *Client) Deactivate(ctx context.Context, email types.Email) error {
	if _, err := x.call(ctx, &request{
		method: http.MethodDelete,
		path:   "/api/repos/deactivate/" + string(email.Normalize()),
		kind:   types.ErrDeactivationFailed,
	}, nil); err != nil {
		return goerr.Wrap(err, "failed to deactivate repository", goerr.V("email", email))
	}
	return nil
}
