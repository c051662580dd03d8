package config

import (
	"log/slog"
	"time"

	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/infra/backend"
	"github.com/urfave/cli/v3"
)

type Backend struct {
	url     string
	timeout time.Duration
	retry   int64
}

func (x *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the LeetVault backend",
			Category:    "Backend",
			Destination: &x.url,
			Value:       "http://localhost:8000",
			Sources:     cli.EnvVars("LEETVAULT_BACKEND_URL"),
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Timeout of a single backend request",
			Category:    "Backend",
			Destination: &x.timeout,
			Value:       backend.DefaultTimeout,
			Sources:     cli.EnvVars("LEETVAULT_BACKEND_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "backend-retry",
			Usage:       "Retries of idempotent backend reads on transport failure or 5xx",
			Category:    "Backend",
			Destination: &x.retry,
			Value:       backend.DefaultRetry,
			Sources:     cli.EnvVars("LEETVAULT_BACKEND_RETRY"),
		},
	}
}

// NewClient returns the backend client. The same client serves provisioning,
// credentials and the GitHub link.
func (x *Backend) NewClient(httpClient infra.HTTPClient) (*backend.Client, error) {
	options := []backend.Option{
		backend.WithTimeout(x.timeout),
		backend.WithRetry(int(x.retry)),
	}
	if httpClient != nil {
		options = append(options, backend.WithHTTPClient(httpClient))
	}
	return backend.New(x.url, options...)
}

func (x Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("Retry", x.retry),
	)
}
