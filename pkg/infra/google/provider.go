package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/loopback"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
)

const (
	callbackPath  = "/oauth-callback"
	defaultLeeway = 30 * time.Second
)

var scopes = []string{"openid", "email", "profile"}

// Provider signs the user in with Google using the installed-app flow: the
// consent page opens in the browser and the code returns to a loopback receiver.
type Provider struct {
	clientID     string
	clientSecret types.OAuthClientSecret
	browser      interfaces.Browser
	endpoint     oauth2.Endpoint
	httpClient   *http.Client
	callbackAddr string
	timeout      time.Duration
	clock        func() time.Time
}

var _ interfaces.IdentityProvider = (*Provider)(nil)

type Option func(*Provider)

func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(x *Provider) {
		x.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Provider) {
		x.httpClient = client
	}
}

// WithCallbackAddr sets the loopback listen address, e.g. "127.0.0.1:8085".
func WithCallbackAddr(addr string) Option {
	return func(x *Provider) {
		x.callbackAddr = addr
	}
}

// WithTimeout bounds how long the user has to finish the consent page.
func WithTimeout(d time.Duration) Option {
	return func(x *Provider) {
		x.timeout = d
	}
}

func WithClock(clock func() time.Time) Option {
	return func(x *Provider) {
		x.clock = clock
	}
}

func New(clientID string, clientSecret types.OAuthClientSecret, browser interfaces.Browser, options ...Option) (*Provider, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Google client ID is empty")
	}
	if browser == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "browser is not set")
	}

	x := &Provider{
		clientID:     clientID,
		clientSecret: clientSecret,
		browser:      browser,
		endpoint:     googleOAuth.Endpoint,
		callbackAddr: loopback.DefaultAddr,
		timeout:      loopback.DefaultTimeout,
		clock:        time.Now,
	}
	for _, opt := range options {
		opt(x)
	}

	return x, nil
}

func (x *Provider) Authenticate(ctx context.Context) (*model.Identity, error) {
	recv, err := loopback.Start(ctx, []string{callbackPath}, loopback.WithAddr(x.callbackAddr))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := recv.Close(); err != nil {
			logging.From(ctx).Warn("failed to close callback server", slog.Any("error", err))
		}
	}()

	cfg := &oauth2.Config{
		ClientID:     x.clientID,
		ClientSecret: string(x.clientSecret),
		RedirectURL:  recv.URL(callbackPath),
		Scopes:       scopes,
		Endpoint:     x.endpoint,
	}

	state, err := newState()
	if err != nil {
		return nil, err
	}
	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)

	logging.From(ctx).Debug("opening Google consent page", slog.String("redirect_url", cfg.RedirectURL))
	if err := x.browser.Open(authURL); err != nil {
		return nil, goerr.Wrap(err, "failed to open consent page")
	}

	waitCtx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()
	result, err := recv.Wait(waitCtx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrSignInFailed, "sign-in was not completed", goerr.V("cause", err))
	}

	query := result.Query
	if query.Has("error") {
		return nil, goerr.Wrap(types.ErrSignInFailed, "Google returned an error",
			goerr.V("error", loopback.ErrorMessage(query)),
		)
	}
	if query.Get("state") != state {
		return nil, goerr.Wrap(types.ErrSignInFailed, "state mismatch in callback")
	}
	code := query.Get("code")
	if code == "" {
		return nil, goerr.Wrap(types.ErrSignInFailed, "no authorization code in callback")
	}

	if x.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	}
	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, goerr.Wrap(types.ErrSignInFailed, "failed to exchange authorization code", goerr.V("cause", err))
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, goerr.Wrap(types.ErrSignInFailed, "token response has no id_token")
	}

	return x.identityFromIDToken(rawIDToken)
}

func newState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", goerr.Wrap(err, "failed to generate state")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
