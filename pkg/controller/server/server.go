package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/loopback"
	"github.com/leetvault/leetvault/pkg/utils/errutil"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const maxBodySize = 64 * 1024

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string          `json:"error"`
	State model.ViewState `json:"state"`
}

// writeError maps an orchestrator error to a status code. The body carries the
// notice set by the orchestrator so a front end can show it as is.
func writeError(w http.ResponseWriter, r *http.Request, uc interfaces.Onboarding, err error) {
	state := uc.View()
	msg := state.Notice
	if msg == "" {
		msg = err.Error()
	}

	code := http.StatusBadGateway
	switch {
	case errors.Is(err, types.ErrActionInFlight):
		code = http.StatusConflict
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption):
		code = http.StatusBadRequest
	default:
		errutil.HandleError(r.Context(), "backend request failed", err)
	}

	writeJSON(w, code, errorResponse{Error: msg, State: state})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err))
	}
	return nil
}

type saveCredentialsRequest struct {
	SessionCookie types.SessionCookie `json:"session_cookie"`
	CSRFToken     types.CSRFToken     `json:"csrf_token"`
	Username      string              `json:"leetcode_username"`
}

type activateRequest struct {
	RepoFullName  types.RepoFullName `json:"repo_name"`
	DefaultBranch types.BranchName   `json:"default_branch"`
}

type connectResponse struct {
	InstallURL string          `json:"install_url"`
	State      model.ViewState `json:"state"`
}

// New builds the local UI router over uc. Orchestrator calls run on a detached
// context so that a client disconnect cannot leave an action half applied.
func New(uc interfaces.Onboarding) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, uc.View())
		})
		r.Post("/reload", func(w http.ResponseWriter, r *http.Request) {
			if err := uc.Start(logging.Detach(r.Context())); err != nil {
				writeError(w, r, uc, err)
				return
			}
			writeJSON(w, http.StatusOK, uc.View())
		})

		r.Route("/credentials", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				var req saveCredentialsRequest
				if err := decodeBody(w, r, &req); err != nil {
					writeError(w, r, uc, err)
					return
				}
				creds := model.Credentials{
					SessionCookie: req.SessionCookie,
					CSRFToken:     req.CSRFToken,
					Username:      req.Username,
				}
				if err := uc.SaveCredentials(logging.Detach(r.Context()), creds); err != nil {
					writeError(w, r, uc, err)
					return
				}
				writeJSON(w, http.StatusOK, uc.View())
			})
			r.Post("/edit", func(w http.ResponseWriter, r *http.Request) {
				uc.EditCredentials()
				writeJSON(w, http.StatusOK, uc.View())
			})
			r.Post("/cancel", func(w http.ResponseWriter, r *http.Request) {
				if err := uc.CancelEdit(logging.Detach(r.Context())); err != nil {
					writeError(w, r, uc, err)
					return
				}
				writeJSON(w, http.StatusOK, uc.View())
			})
		})

		r.Post("/github/connect", func(w http.ResponseWriter, r *http.Request) {
			link, err := uc.ConnectGitHub(logging.Detach(r.Context()))
			if err != nil {
				writeError(w, r, uc, err)
				return
			}
			writeJSON(w, http.StatusOK, connectResponse{InstallURL: link, State: uc.View()})
		})

		r.Route("/repositories", func(r chi.Router) {
			r.Post("/refresh", func(w http.ResponseWriter, r *http.Request) {
				if err := uc.RefreshRepositories(logging.Detach(r.Context())); err != nil {
					writeError(w, r, uc, err)
					return
				}
				writeJSON(w, http.StatusOK, uc.View())
			})
			r.Post("/activate", func(w http.ResponseWriter, r *http.Request) {
				var req activateRequest
				if err := decodeBody(w, r, &req); err != nil {
					writeError(w, r, uc, err)
					return
				}
				if err := uc.ActivateRepository(logging.Detach(r.Context()), req.RepoFullName, req.DefaultBranch); err != nil {
					writeError(w, r, uc, err)
					return
				}
				writeJSON(w, http.StatusOK, uc.View())
			})
			r.Delete("/active", func(w http.ResponseWriter, r *http.Request) {
				if err := uc.DeactivateRepository(logging.Detach(r.Context())); err != nil {
					writeError(w, r, uc, err)
					return
				}
				writeJSON(w, http.StatusOK, uc.View())
			})
		})
	})

	// Return paths of the GitHub App installation.
	r.Get("/home", func(w http.ResponseWriter, r *http.Request) {
		installationID := types.InstallationID(r.URL.Query().Get("installation_id"))
		if installationID == "" {
			renderHome(w, uc.View())
			return
		}

		if err := uc.CompleteInstallation(logging.Detach(r.Context()), installationID); err != nil {
			errutil.HandleError(r.Context(), "failed to complete installation", err)
		}
		http.Redirect(w, r, "/home", http.StatusSeeOther)
	})
	r.Get(loopback.ErrorPath, func(w http.ResponseWriter, r *http.Request) {
		msg := loopback.ErrorMessage(r.URL.Query())
		logging.From(r.Context()).Warn("installation returned an error", slog.String("message", msg))
		renderPage(w, http.StatusOK, "Something went wrong", msg)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>LeetVault</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 50px auto;">
<h2>LeetVault</h2>
<p>{{.Email}}</p>
<dl>
<dt>Account</dt><dd>{{.Phase}}</dd>
<dt>LeetCode</dt><dd>{{if .Credentials.Configured}}{{.Credentials.Username}}{{else}}not configured{{end}}</dd>
<dt>GitHub</dt><dd>{{.GitHub}}</dd>
{{with .Activation}}<dt>Repository</dt><dd>{{.RepoFullName}} ({{.DefaultBranch}})</dd>{{end}}
</dl>
{{with .Notice}}<p>{{.}}</p>{{end}}
</body>
</html>`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>LeetVault - {{.Title}}</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 50px auto; text-align: center;">
<h2>{{.Title}}</h2>
<p>{{.Message}}</p>
<p><a href="/home">Back to home</a></p>
</body>
</html>`))

func renderHome(w http.ResponseWriter, state model.ViewState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := homeTemplate.Execute(w, state); err != nil {
		logging.Default().Error("fail to render home page", slog.Any("error", err))
	}
}

func renderPage(w http.ResponseWriter, code int, title, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	data := struct{ Title, Message string }{Title: title, Message: msg}
	if err := pageTemplate.Execute(w, data); err != nil {
		logging.Default().Error("fail to render page", slog.Any("error", err))
	}
}
