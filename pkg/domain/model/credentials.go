package model

import (
	"log/slog"

	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Credentials holds the scraped-site session of a user. Configured is derived from
// SessionCookie after a fetch and is the authoritative "setup finished" signal.
type Credentials struct {
	SessionCookie types.SessionCookie `masq:"secret"`
	CSRFToken     types.CSRFToken     `masq:"secret"`
	Username      string
	Configured    bool
}

// Validate checks that all three fields are set. Saving is a full replace, so partial
// input is rejected before any request is sent.
func (x *Credentials) Validate() error {
	if x.SessionCookie == "" {
		return goerr.Wrap(types.ErrValidationFailed, "session cookie is empty")
	}
	if x.CSRFToken == "" {
		return goerr.Wrap(types.ErrValidationFailed, "csrf token is empty")
	}
	if x.Username == "" {
		return goerr.Wrap(types.ErrValidationFailed, "username is empty")
	}
	return nil
}

func (x Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("SessionCookie.len", len(x.SessionCookie)),
		slog.Int("CSRFToken.len", len(x.CSRFToken)),
		slog.String("Username", x.Username),
		slog.Bool("Configured", x.Configured),
	)
}
