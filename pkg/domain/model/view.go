package model

import (
	"time"

	"github.com/leetvault/leetvault/pkg/domain/types"
)

type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseLoading       Phase = "loading"
	PhaseNewUserSetup  Phase = "new_user_setup"
	PhaseReturningUser Phase = "returning_user"
	PhaseLoadFailed    Phase = "load_failed"
)

type CredentialState string

const (
	CredentialEditing CredentialState = "editing"
	CredentialViewing CredentialState = "viewing"
)

type GitHubState string

const (
	GitHubDisconnected  GitHubState = "disconnected"
	GitHubLinkRequested GitHubState = "link_requested"
	GitHubDiscovering   GitHubState = "discovering"
	GitHubRepoChoice    GitHubState = "repo_choice"
	GitHubActivated     GitHubState = "activated"
	GitHubDeactivating  GitHubState = "deactivating"
)

// ViewState is a detached copy of the orchestrator state for presentation.
type ViewState struct {
	Email          types.Email          `json:"email"`
	Phase          Phase                `json:"phase"`
	IsNewUser      bool                 `json:"is_new_user"`
	Credential     CredentialState      `json:"credential_state"`
	Credentials    CredentialsView      `json:"credentials"`
	GitHub         GitHubState          `json:"github_state"`
	InstallationID types.InstallationID `json:"installation_id,omitempty"`
	InstallURL     string               `json:"install_url,omitempty"`
	Repositories   []RepositoryView     `json:"repositories"`
	EmptyDiscovery bool                 `json:"empty_discovery"`
	Activation     *ActivationView      `json:"activation,omitempty"`
	Saving         bool                 `json:"saving"`
	ConnectingRepo types.RepoFullName   `json:"connecting_repo,omitempty"`
	Disconnecting  bool                 `json:"disconnecting"`
	LoadingRepos   bool                 `json:"loading_repos"`
	Notice         string               `json:"notice,omitempty"`
}

type CredentialsView struct {
	Username      string `json:"leetcode_username"`
	SessionCookie string `json:"session_cookie_preview"`
	CSRFToken     string `json:"csrf_token"`
	Configured    bool   `json:"configured"`
}

type RepositoryView struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	FullName      types.RepoFullName `json:"full_name"`
	Private       bool               `json:"private"`
	DefaultBranch types.BranchName   `json:"default_branch"`
	HTMLURL       string             `json:"html_url,omitempty"`
	Description   string             `json:"description,omitempty"`
	Language      string             `json:"language,omitempty"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
}

type ActivationView struct {
	RepoFullName  types.RepoFullName `json:"repo_full_name"`
	DefaultBranch types.BranchName   `json:"default_branch"`
	IsActive      bool               `json:"is_active"`
	ActivatedAt   time.Time          `json:"activated_at"`
	LastSyncAt    *time.Time         `json:"last_sync_at,omitempty"`
}

// sessionCookiePreviewLen matches how much of the cookie the credential view reveals.
const sessionCookiePreviewLen = 50

func NewCredentialsView(c Credentials) CredentialsView {
	return CredentialsView{
		Username:      c.Username,
		SessionCookie: c.SessionCookie.Preview(sessionCookiePreviewLen),
		CSRFToken:     string(c.CSRFToken),
		Configured:    c.Configured,
	}
}

func NewRepositoryView(r Repository) RepositoryView {
	v := RepositoryView{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		Private:       r.IsPrivate,
		DefaultBranch: r.DefaultBranch,
		HTMLURL:       r.HTMLURL,
	}
	if r.Description != nil {
		v.Description = *r.Description
	}
	if r.Language != nil {
		v.Language = *r.Language
	}
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		v.UpdatedAt = &t
	}
	return v
}

func NewActivationView(a *RepoActivation) *ActivationView {
	if a == nil {
		return nil
	}
	v := &ActivationView{
		RepoFullName:  a.RepoFullName,
		DefaultBranch: a.DefaultBranch,
		IsActive:      a.IsActive,
		ActivatedAt:   a.ActivatedAt,
	}
	if a.LastSyncAt != nil {
		t := *a.LastSyncAt
		v.LastSyncAt = &t
	}
	return v
}
