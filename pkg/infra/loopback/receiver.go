package loopback

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	ErrorPath = "/error"

	DefaultAddr    = "127.0.0.1:0"
	DefaultTimeout = 5 * time.Minute

	shutdownTimeout = 2 * time.Second
)

// Result is the first browser request that carried a query string to one of
// the receiver's paths.
type Result struct {
	Path  string
	Query url.Values
}

// Receiver is a one-shot HTTP server on the loopback interface. It serves a
// fixed set of paths and hands the first request with parameters to Wait.
type Receiver struct {
	listener net.Listener
	server   *http.Server
	results  chan *Result
	received atomic.Bool
	once     sync.Once
	closeErr error
}

type config struct {
	addr  string
	paths []string
}

type Option func(*config)

// WithAddr sets the listen address. Port 0 picks a free port.
func WithAddr(addr string) Option {
	return func(x *config) {
		x.addr = addr
	}
}

// Start listens and serves paths until Close. At least one path is required.
func Start(ctx context.Context, paths []string, options ...Option) (*Receiver, error) {
	if len(paths) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no callback path")
	}
	cfg := &config{addr: DefaultAddr, paths: paths}
	for _, opt := range options {
		opt(cfg)
	}

	listener, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to listen for callback", goerr.V("addr", cfg.addr))
	}

	x := &Receiver{
		listener: listener,
		results:  make(chan *Result, 1),
	}

	r := chi.NewRouter()
	for _, path := range cfg.paths {
		r.Get(path, x.handle)
	}
	x.server = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger := logging.From(ctx)
	go func() {
		if err := x.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("callback server stopped", slog.Any("error", err))
		}
	}()
	logger.Debug("callback server listening", slog.String("addr", listener.Addr().String()))

	return x, nil
}

// Port returns the bound TCP port.
func (x *Receiver) Port() int {
	return x.listener.Addr().(*net.TCPAddr).Port
}

// URL returns the absolute URL of path on this receiver, using "localhost" so
// that it matches redirect URIs registered for loopback clients.
func (x *Receiver) URL(path string) string {
	return "http://localhost:" + strconv.Itoa(x.Port()) + path
}

// Wait blocks until the first result arrives or ctx is done.
func (x *Receiver) Wait(ctx context.Context) (*Result, error) {
	select {
	case result := <-x.results:
		return result, nil
	case <-ctx.Done():
		return nil, goerr.Wrap(types.ErrCallbackTimeout, "no callback received", goerr.V("cause", ctx.Err()))
	}
}

// Close shuts the server down. It is safe to call more than once.
func (x *Receiver) Close() error {
	x.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := x.server.Shutdown(ctx); err != nil {
			x.closeErr = goerr.Wrap(err, "failed to shutdown callback server")
		}
	})
	return x.closeErr
}

func (x *Receiver) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if len(query) == 0 {
		renderPage(w, http.StatusOK, donePage)
		return
	}

	if !x.received.CompareAndSwap(false, true) {
		renderPage(w, http.StatusBadRequest, pageData{
			Title:   "Already processed",
			Message: "This request was already handled. You can close this window.",
		})
		return
	}

	x.results <- &Result{Path: r.URL.Path, Query: query}

	if r.URL.Path == ErrorPath || query.Has("error") {
		renderPage(w, http.StatusOK, pageData{Title: "Something went wrong", Message: ErrorMessage(query)})
		return
	}

	// Drop the consumed parameters from the address bar.
	http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
}

// ErrorMessage returns the human readable failure carried by an error redirect.
func ErrorMessage(query url.Values) string {
	for _, key := range []string{"message", "error_description", "error"} {
		if msg := query.Get(key); msg != "" {
			return msg
		}
	}
	return "unknown error"
}

type pageData struct {
	Title   string
	Message string
}

var donePage = pageData{
	Title:   "All set",
	Message: "You can close this window and return to the terminal.",
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>LeetVault - {{.Title}}</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 50px auto; text-align: center;">
<h2>{{.Title}}</h2>
<p>{{.Message}}</p>
</body>
</html>`))

func renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		logging.Default().Warn("failed to render callback page", slog.Any("error", err))
	}
}
