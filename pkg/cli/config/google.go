package config

import (
	"log/slog"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/google"
	"github.com/leetvault/leetvault/pkg/infra/loopback"
	"github.com/urfave/cli/v3"
)

type Google struct {
	clientID     string
	clientSecret types.OAuthClientSecret `masq:"secret"`
	callbackAddr string
	timeout      time.Duration
}

func (x *Google) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-client-id",
			Usage:       "Google OAuth client ID (desktop app)",
			Category:    "Google",
			Destination: &x.clientID,
			Sources:     cli.EnvVars("LEETVAULT_GOOGLE_CLIENT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "google-client-secret",
			Usage:       "Google OAuth client secret",
			Category:    "Google",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("LEETVAULT_GOOGLE_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "google-callback-addr",
			Usage:       "Listen address of the sign-in callback",
			Category:    "Google",
			Destination: &x.callbackAddr,
			Value:       loopback.DefaultAddr,
			Sources:     cli.EnvVars("LEETVAULT_GOOGLE_CALLBACK_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "google-timeout",
			Usage:       "Time allowed to finish signing in",
			Category:    "Google",
			Destination: &x.timeout,
			Value:       loopback.DefaultTimeout,
			Sources:     cli.EnvVars("LEETVAULT_GOOGLE_TIMEOUT"),
		},
	}
}

func (x *Google) NewProvider(browser interfaces.Browser) (*google.Provider, error) {
	return google.New(x.clientID, x.clientSecret, browser,
		google.WithCallbackAddr(x.callbackAddr),
		google.WithTimeout(x.timeout),
	)
}

func (x Google) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", x.clientID),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("CallbackAddr", x.callbackAddr),
		slog.Duration("Timeout", x.timeout),
	)
}
