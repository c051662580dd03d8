package config

import (
	"log/slog"

	"github.com/leetvault/leetvault/pkg/infra/session"
	"github.com/urfave/cli/v3"
)

type Session struct {
	path string
}

func (x *Session) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "session-file",
			Usage:       "Path of the signed-in identity file (default: $XDG_CONFIG_HOME/leetvault/session.yaml)",
			Category:    "Session",
			Destination: &x.path,
			Sources:     cli.EnvVars("LEETVAULT_SESSION_FILE"),
		},
	}
}

func (x *Session) NewStore() (*session.FileStore, error) {
	path := x.path
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return session.New(path), nil
}

func (x Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
	)
}
