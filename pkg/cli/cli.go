package cli

import (
	"context"
	"io"
	"os"

	"github.com/leetvault/leetvault/pkg/cli/config"
	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out     io.Writer
	browser interfaces.Browser

	backend config.Backend
	session config.Session
	sentry  config.Sentry
}

type Option func(*CLI)

// WithOutput replaces stdout for command output.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

// WithBrowser replaces the system browser.
func WithBrowser(browser interfaces.Browser) Option {
	return func(x *CLI) {
		x.browser = browser
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	logFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("LEETVAULT_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "warn",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("LEETVAULT_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("LEETVAULT_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "stderr",
		},
	}

	app := &cli.Command{
		Name:   "leetvault",
		Usage:  "Link LeetCode credentials and a GitHub repository to your LeetVault account",
		Writer: x.out,
		Flags: slice.Flatten(
			logFlags,
			x.backend.Flags(),
			x.session.Flags(),
			x.sentry.Flags(),
		),
		Commands: []*cli.Command{
			x.loginCommand(),
			x.logoutCommand(),
			x.whoamiCommand(),
			x.statusCommand(),
			x.credentialsCommand(),
			x.githubCommand(),
			x.repoCommand(),
			x.serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := x.sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			x.sentry.Flush()
			return nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
