package google_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/leetvault/leetvault/pkg/domain/mock"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/google"
	"github.com/m-mizutani/gt"
	"golang.org/x/oauth2"
)

const clientID = "test-client.apps.googleusercontent.com"

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func signIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	return gt.R1(jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))).NoError(t)
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"aud":            clientID,
		"sub":            "110169484474386276334",
		"email":          "Alice@Example.com",
		"email_verified": true,
		"iat":            now.Add(-time.Minute).Unix(),
		"exp":            now.Add(time.Hour).Unix(),
	}
}

func newProvider(t *testing.T, browser *mock.BrowserMock, options ...google.Option) *google.Provider {
	t.Helper()
	options = append([]google.Option{google.WithClock(func() time.Time { return now })}, options...)
	return gt.R1(google.New(clientID, "test-secret", browser, options...)).NoError(t)
}

func TestIdentityFromIDToken(t *testing.T) {
	testCases := map[string]struct {
		modify func(c jwt.MapClaims)
		hasErr bool
	}{
		"valid": {
			modify: func(c jwt.MapClaims) {},
		},
		"issuer without scheme": {
			modify: func(c jwt.MapClaims) { c["iss"] = "accounts.google.com" },
		},
		"wrong audience": {
			modify: func(c jwt.MapClaims) { c["aud"] = "someone-else" },
			hasErr: true,
		},
		"untrusted issuer": {
			modify: func(c jwt.MapClaims) { c["iss"] = "https://evil.example.com" },
			hasErr: true,
		},
		"expired": {
			modify: func(c jwt.MapClaims) { c["exp"] = now.Add(-time.Hour).Unix() },
			hasErr: true,
		},
		"missing expiry": {
			modify: func(c jwt.MapClaims) { delete(c, "exp") },
			hasErr: true,
		},
		"unverified email": {
			modify: func(c jwt.MapClaims) { c["email_verified"] = false },
			hasErr: true,
		},
		"missing subject": {
			modify: func(c jwt.MapClaims) { delete(c, "sub") },
			hasErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			claims := validClaims()
			tc.modify(claims)

			p := newProvider(t, &mock.BrowserMock{})
			identity, err := p.IdentityFromIDToken(signIDToken(t, claims))
			if tc.hasErr {
				gt.True(t, errors.Is(err, types.ErrSignInFailed))
				return
			}
			gt.NoError(t, err)
			gt.V(t, identity.Subject).Equal("110169484474386276334")
			gt.V(t, identity.Email).Equal("alice@example.com")
		})
	}

	t.Run("malformed token", func(t *testing.T) {
		p := newProvider(t, &mock.BrowserMock{})
		_, err := p.IdentityFromIDToken("not-a-jwt")
		gt.True(t, errors.Is(err, types.ErrSignInFailed))
	})
}

func TestNew(t *testing.T) {
	_, err := google.New("", "secret", &mock.BrowserMock{})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = google.New(clientID, "secret", nil)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

// followConsent plays the consent page: it reads the redirect URI and state
// from the auth URL and calls the loopback receiver with extra parameters.
func followConsent(t *testing.T, extra url.Values) *mock.BrowserMock {
	return &mock.BrowserMock{
		OpenFunc: func(authURL string) error {
			u, err := url.Parse(authURL)
			if err != nil {
				return err
			}
			q := u.Query()
			if q.Get("code_challenge_method") != "S256" || q.Get("code_challenge") == "" {
				t.Errorf("PKCE challenge is missing: %s", authURL)
			}

			callback := url.Values{"state": {q.Get("state")}}
			for k, v := range extra {
				callback[k] = v
			}
			go func() {
				resp, err := http.Get(q.Get("redirect_uri") + "?" + callback.Encode())
				if err == nil {
					_ = resp.Body.Close()
				}
			}()
			return nil
		},
	}
}

func newTokenServer(t *testing.T, idToken string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/token", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		gt.V(t, r.PostForm.Get("code")).Equal("auth-code")
		gt.V(t, r.PostForm.Get("grant_type")).Equal("authorization_code")
		gt.True(t, r.PostForm.Get("code_verifier") != "")

		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		}))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("completes the flow", func(t *testing.T) {
		srv := newTokenServer(t, signIDToken(t, validClaims()))
		browser := followConsent(t, url.Values{"code": {"auth-code"}})
		p := newProvider(t, browser,
			google.WithEndpoint(oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}),
			google.WithTimeout(5*time.Second),
		)

		identity := gt.R1(p.Authenticate(ctx)).NoError(t)
		gt.V(t, identity.Email).Equal("alice@example.com")
		gt.V(t, len(browser.OpenCalls())).Equal(1)
	})

	t.Run("user denies consent", func(t *testing.T) {
		browser := followConsent(t, url.Values{"error": {"access_denied"}})
		p := newProvider(t, browser,
			google.WithEndpoint(oauth2.Endpoint{AuthURL: "http://127.0.0.1:1/auth", TokenURL: "http://127.0.0.1:1/token"}),
			google.WithTimeout(5*time.Second),
		)

		_, err := p.Authenticate(ctx)
		gt.True(t, errors.Is(err, types.ErrSignInFailed))
	})

	t.Run("times out without callback", func(t *testing.T) {
		browser := &mock.BrowserMock{
			OpenFunc: func(string) error { return nil },
		}
		p := newProvider(t, browser, google.WithTimeout(50*time.Millisecond))

		_, err := p.Authenticate(ctx)
		gt.True(t, errors.Is(err, types.ErrSignInFailed))
	})

	t.Run("browser failure stops the flow", func(t *testing.T) {
		browser := &mock.BrowserMock{
			OpenFunc: func(string) error { return errors.New("no display") },
		}
		p := newProvider(t, browser)

		_, err := p.Authenticate(ctx)
		gt.Error(t, err)
	})
}
