package backend

import (
	"context"
	"net/http"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type credentialsBody struct {
	Email            types.Email `json:"email,omitempty"`
	Configured       *bool       `json:"configured,omitempty"`
	SessionCookie    string      `json:"session_cookie,omitempty"`
	CSRFToken        string      `json:"csrf_token,omitempty"`
	LeetCodeUsername *string     `json:"leetcode_username,omitempty"`
}

func (x *credentialsBody) toModel() *model.Credentials {
	creds := &model.Credentials{
		SessionCookie: types.SessionCookie(x.SessionCookie),
		CSRFToken:     types.CSRFToken(x.CSRFToken),
	}
	if x.LeetCodeUsername != nil {
		creds.Username = *x.LeetCodeUsername
	}
	if x.Configured != nil {
		creds.Configured = *x.Configured
	} else {
		creds.Configured = creds.SessionCookie != ""
	}
	return creds
}

// Fetch returns the stored credentials. An account without credentials is not an
// error; the result has Configured false and empty fields.
func (x *Client) Fetch(ctx context.Context, email types.Email) (*model.Credentials, error) {
	var resp credentialsBody
	if _, err := x.call(ctx, &request{
		method:     http.MethodGet,
		path:       "/api/leetcode/credentials/" + string(email.Normalize()),
		idempotent: true,
		kind:       types.ErrCredentialFetchFailed,
	}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch credentials", goerr.V("email", email))
	}

	return resp.toModel(), nil
}

// Save replaces the stored credentials with creds. All three fields are required.
func (x *Client) Save(ctx context.Context, email types.Email, creds model.Credentials) (*model.Credentials, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	username := creds.Username
	var resp credentialsBody
	if _, err := x.call(ctx, &request{
		method: http.MethodPost,
		path:   "/api/leetcode/credentials",
		body: credentialsBody{
			Email:            email.Normalize(),
			SessionCookie:    string(creds.SessionCookie),
			CSRFToken:        string(creds.CSRFToken),
			LeetCodeUsername: &username,
		},
		kind: types.ErrCredentialSaveFailed,
	}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to save credentials", goerr.V("email", email))
	}

	saved := resp.toModel()
	// The echo may omit fields; what was sent is what is stored.
	if saved.SessionCookie == "" {
		saved.SessionCookie = creds.SessionCookie
	}
	if saved.CSRFToken == "" {
		saved.CSRFToken = creds.CSRFToken
	}
	if saved.Username == "" {
		saved.Username = creds.Username
	}
	saved.Configured = true

	return saved, nil
}
