package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	Email             string
	Subject           string
	SessionCookie     string
	CSRFToken         string
	OAuthClientSecret string
	RequestID         string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// Normalize lower-cases and trims the address. The backend keys accounts by the normalized form.
func (x Email) Normalize() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(x))))
}

func (x Email) String() string { return string(x) }

func (x SessionCookie) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionCookie) String() string {
	return "***********"
}

// Preview returns the first n characters followed by an ellipsis, as shown in the credential view.
func (x SessionCookie) Preview(n int) string {
	if len(x) <= n {
		return string(x)
	}
	return string(x[:n]) + "..."
}

func (x CSRFToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CSRFToken) String() string {
	return "***********"
}

func (x OAuthClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x OAuthClientSecret) String() string {
	return "***********"
}
