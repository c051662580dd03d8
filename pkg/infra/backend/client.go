package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/leetvault/leetvault/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultTimeout = 15 * time.Second
	DefaultRetry   = 1

	maxErrorBody = 64 * 1024
)

// Client talks to the LeetVault REST backend. One Client serves account
// provisioning, credential storage and the GitHub link operations.
type Client struct {
	baseURL    *url.URL
	httpClient infra.HTTPClient
	timeout    time.Duration
	retry      int
}

var (
	_ interfaces.AccountProvisioner = (*Client)(nil)
	_ interfaces.CredentialStore    = (*Client)(nil)
	_ interfaces.GitHubLinkManager  = (*Client)(nil)
)

type Option func(*Client)

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithTimeout bounds every single attempt. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

// WithRetry sets how many extra attempts an idempotent request gets after a
// transport failure or a 5xx answer. Mutations are never retried.
func WithRetry(n int) Option {
	return func(x *Client) {
		x.retry = n
	}
}

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "backend URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "backend URL is invalid", goerr.V("url", baseURL), goerr.V("cause", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "backend URL must be http or https", goerr.V("url", baseURL))
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	client := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		retry:      DefaultRetry,
	}
	for _, opt := range options {
		opt(client)
	}
	if client.retry < 0 {
		client.retry = 0
	}

	return client, nil
}

type request struct {
	method     string
	path       string
	query      url.Values
	body       any
	idempotent bool
	// kind is the sentinel carried by any failure of this request
	kind error
	// accept lists non-2xx statuses treated as success without decoding the body
	accept []int
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// call performs r, retrying idempotent requests, and decodes a 2xx body into out
// when out is not nil. It returns the final status code.
func (x *Client) call(ctx context.Context, r *request, out any) (int, error) {
	var payload []byte
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to marshal request body", goerr.V("path", r.path))
		}
		payload = raw
	}

	attempts := 1
	if r.idempotent {
		attempts += x.retry
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			logging.From(ctx).Debug("retrying backend request",
				slog.String("method", r.method),
				slog.String("path", r.path),
				slog.Int("attempt", i+1),
				slog.Any("error", lastErr),
			)
		}

		status, body, err := x.send(ctx, r, payload)
		if err != nil {
			lastErr = goerr.Wrap(&types.APIError{Kind: r.kind, Cause: err}, "backend request failed",
				goerr.V("method", r.method),
				goerr.V("path", r.path),
			)
			if ctx.Err() != nil {
				return 0, lastErr
			}
			continue
		}

		if status >= 200 && status < 300 {
			if out != nil && len(body) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					return status, goerr.Wrap(&types.APIError{Kind: r.kind, StatusCode: status, Cause: err},
						"failed to decode backend response",
						goerr.V("path", r.path),
					)
				}
			}
			return status, nil
		}
		for _, code := range r.accept {
			if status == code {
				return status, nil
			}
		}

		lastErr = goerr.Wrap(&types.APIError{
			Kind:       r.kind,
			StatusCode: status,
			Detail:     decodeDetail(body),
		}, "backend returned error status",
			goerr.V("method", r.method),
			goerr.V("path", r.path),
			goerr.V("status", status),
		)
		if status < 500 {
			return status, lastErr
		}
	}

	return 0, lastErr
}

func (x *Client) send(ctx context.Context, r *request, payload []byte) (int, []byte, error) {
	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	u := *x.baseURL
	u.Path = x.baseURL.Path + r.path
	u.RawPath = ""
	if r.query != nil {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to create request", goerr.V("url", u.String()))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID, _ := logging.CtxRequestID(ctx)
	req.Header.Set("X-Request-ID", string(reqID))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to send request", goerr.V("url", u.String()))
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize(resp.StatusCode)))
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to read response", goerr.V("url", u.String()))
	}

	logging.From(ctx).Debug("backend response",
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.Int("status", resp.StatusCode),
	)

	return resp.StatusCode, raw, nil
}

func maxBodySize(status int) int64 {
	if status >= 200 && status < 300 {
		return 16 * 1024 * 1024
	}
	return maxErrorBody
}

// decodeDetail extracts the human readable "detail" of an error body. The backend
// sends a string; validation failures send a list of objects with "msg".
func decodeDetail(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(resp.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(resp.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

// timestamp decodes the backend's ISO-8601 strings, with or without zone, and null.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func (x *timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return goerr.Wrap(err, "timestamp is not a string")
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			x.Time = t.UTC()
			return nil
		}
	}
	return goerr.New("unsupported timestamp format", goerr.V("value", s))
}

func (x *timestamp) ptr() *time.Time {
	if x == nil || x.IsZero() {
		return nil
	}
	t := x.Time
	return &t
}
