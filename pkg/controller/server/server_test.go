package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leetvault/leetvault/pkg/controller/server"
	"github.com/leetvault/leetvault/pkg/domain/mock"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newOnboardingMock() *mock.OnboardingMock {
	return &mock.OnboardingMock{
		ViewFunc: func() model.ViewState {
			return model.ViewState{
				Email:      "alice@example.com",
				Phase:      model.PhaseReturningUser,
				Credential: model.CredentialViewing,
				GitHub:     model.GitHubRepoChoice,
			}
		},
	}
}

func serve(t *testing.T, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := server.New(&mock.OnboardingMock{})

	rec := serve(t, srv, http.MethodGet, "/health", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestState(t *testing.T) {
	uc := newOnboardingMock()
	srv := server.New(uc)

	rec := serve(t, srv, http.MethodGet, "/api/state", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

	var state model.ViewState
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	gt.V(t, state.Phase).Equal(model.PhaseReturningUser)
	gt.V(t, state.GitHub).Equal(model.GitHubRepoChoice)
}

func TestReload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.StartFunc = func(ctx context.Context) error { return nil }
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/reload", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, len(uc.StartCalls())).Equal(1)
	})

	t.Run("backend failure maps to 502 with notice", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.StartFunc = func(ctx context.Context) error {
			return goerr.Wrap(types.ErrProvisioningFailed, "failed to load account")
		}
		uc.ViewFunc = func() model.ViewState {
			return model.ViewState{
				Phase:  model.PhaseLoadFailed,
				Notice: "Failed to load your account. Please try again.",
			}
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/reload", "")
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)

		var resp struct {
			Error string          `json:"error"`
			State model.ViewState `json:"state"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Error).Equal("Failed to load your account. Please try again.")
		gt.V(t, resp.State.Phase).Equal(model.PhaseLoadFailed)
	})
}

func TestCredentials(t *testing.T) {
	t.Run("save", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.SaveCredentialsFunc = func(ctx context.Context, creds model.Credentials) error { return nil }
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/credentials",
			`{"session_cookie":"abc","csrf_token":"def","leetcode_username":"u1"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := uc.SaveCredentialsCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Creds).Equal(model.Credentials{
			SessionCookie: "abc",
			CSRFToken:     "def",
			Username:      "u1",
		})
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := newOnboardingMock()
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/credentials", `{"session_cookie":`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.SaveCredentialsCalls())).Equal(0)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.SaveCredentialsFunc = func(ctx context.Context, creds model.Credentials) error {
			return goerr.Wrap(types.ErrValidationFailed, "csrf token is empty")
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/credentials", `{"session_cookie":"abc","leetcode_username":"u1"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.S(t, rec.Body.String()).Contains("csrf token is empty")
	})

	t.Run("edit and cancel", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.EditCredentialsFunc = func() {}
		uc.CancelEditFunc = func(ctx context.Context) error { return nil }
		srv := server.New(uc)

		gt.V(t, serve(t, srv, http.MethodPost, "/api/credentials/edit", "").Code).Equal(http.StatusOK)
		gt.V(t, serve(t, srv, http.MethodPost, "/api/credentials/cancel", "").Code).Equal(http.StatusOK)
		gt.V(t, len(uc.EditCredentialsCalls())).Equal(1)
		gt.V(t, len(uc.CancelEditCalls())).Equal(1)
	})
}

func TestConnectGitHub(t *testing.T) {
	uc := newOnboardingMock()
	uc.ConnectGitHubFunc = func(ctx context.Context) (string, error) {
		return "https://github.com/apps/leetvault/installations/new", nil
	}
	srv := server.New(uc)

	rec := serve(t, srv, http.MethodPost, "/api/github/connect", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		InstallURL string `json:"install_url"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.V(t, resp.InstallURL).Equal("https://github.com/apps/leetvault/installations/new")
}

func TestRepositories(t *testing.T) {
	t.Run("activate", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.ActivateRepositoryFunc = func(ctx context.Context, repo types.RepoFullName, branch types.BranchName) error {
			return nil
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/repositories/activate", `{"repo_name":"org/repo","default_branch":"main"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := uc.ActivateRepositoryCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Repo).Equal(types.RepoFullName("org/repo"))
		gt.V(t, calls[0].Branch).Equal(types.BranchName("main"))
	})

	t.Run("activation in flight maps to 409", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.ActivateRepositoryFunc = func(ctx context.Context, repo types.RepoFullName, branch types.BranchName) error {
			return goerr.Wrap(types.ErrActionInFlight, "repository activation is in flight")
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/repositories/activate", `{"repo_name":"org/repo"}`)
		gt.V(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("activation detail is returned", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.ActivateRepositoryFunc = func(ctx context.Context, repo types.RepoFullName, branch types.BranchName) error {
			return goerr.Wrap(&types.APIError{Kind: types.ErrActivationFailed, StatusCode: 404, Detail: "Installation not found"}, "failed")
		}
		uc.ViewFunc = func() model.ViewState {
			return model.ViewState{Notice: "Installation not found"}
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/repositories/activate", `{"repo_name":"org/repo"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
		gt.S(t, rec.Body.String()).Contains("Installation not found")
	})

	t.Run("refresh", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.RefreshRepositoriesFunc = func(ctx context.Context) error {
			return goerr.Wrap(types.ErrInvalidOption, "a repository is already activated")
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodPost, "/api/repositories/refresh", "")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.RefreshRepositoriesCalls())).Equal(1)
	})

	t.Run("deactivate", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.DeactivateRepositoryFunc = func(ctx context.Context) error { return nil }
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodDelete, "/api/repositories/active", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, len(uc.DeactivateRepositoryCalls())).Equal(1)
	})
}

func TestInstallationReturn(t *testing.T) {
	t.Run("installation ID is consumed and dropped from the URL", func(t *testing.T) {
		uc := newOnboardingMock()
		uc.CompleteInstallationFunc = func(ctx context.Context, installationID types.InstallationID) error {
			return nil
		}
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodGet, "/home?installation_id=42&user_id=u1&github_username=alice", "")
		gt.V(t, rec.Code).Equal(http.StatusSeeOther)
		gt.V(t, rec.Header().Get("Location")).Equal("/home")

		calls := uc.CompleteInstallationCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].InstallationID).Equal(types.InstallationID("42"))
	})

	t.Run("home renders the state", func(t *testing.T) {
		uc := newOnboardingMock()
		srv := server.New(uc)

		rec := serve(t, srv, http.MethodGet, "/home", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains("alice@example.com")
		gt.S(t, rec.Body.String()).Contains("repo_choice")
		gt.V(t, len(uc.CompleteInstallationCalls())).Equal(0)
	})

	t.Run("error page shows the message escaped", func(t *testing.T) {
		srv := server.New(newOnboardingMock())

		rec := serve(t, srv, http.MethodGet, "/error?message=%3Cb%3Ebad%3C%2Fb%3E", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains("&lt;b&gt;bad&lt;/b&gt;")
	})
}
