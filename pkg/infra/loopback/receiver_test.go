package loopback_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/loopback"
	"github.com/m-mizutani/gt"
)

func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestReceiver(t *testing.T) {
	ctx := context.Background()

	t.Run("first request with parameters is delivered", func(t *testing.T) {
		recv := gt.R1(loopback.Start(ctx, []string{"/home", loopback.ErrorPath})).NoError(t)
		t.Cleanup(func() { gt.NoError(t, recv.Close()) })

		resp := gt.R1(noRedirect().Get(recv.URL("/home?installation_id=42&user_id=alice_example_com"))).NoError(t)
		gt.NoError(t, resp.Body.Close())
		gt.V(t, resp.StatusCode).Equal(http.StatusSeeOther)
		gt.V(t, resp.Header.Get("Location")).Equal("/home")

		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		result := gt.R1(recv.Wait(waitCtx)).NoError(t)
		gt.V(t, result.Path).Equal("/home")
		gt.V(t, result.Query.Get("installation_id")).Equal("42")
	})

	t.Run("second request is rejected", func(t *testing.T) {
		recv := gt.R1(loopback.Start(ctx, []string{"/home"})).NoError(t)
		t.Cleanup(func() { gt.NoError(t, recv.Close()) })

		first := gt.R1(noRedirect().Get(recv.URL("/home?installation_id=1"))).NoError(t)
		gt.NoError(t, first.Body.Close())
		second := gt.R1(noRedirect().Get(recv.URL("/home?installation_id=2"))).NoError(t)
		gt.NoError(t, second.Body.Close())
		gt.V(t, second.StatusCode).Equal(http.StatusBadRequest)

		result := gt.R1(recv.Wait(ctx)).NoError(t)
		gt.V(t, result.Query.Get("installation_id")).Equal("1")
	})

	t.Run("parameter-free page does not deliver", func(t *testing.T) {
		recv := gt.R1(loopback.Start(ctx, []string{"/home"})).NoError(t)
		t.Cleanup(func() { gt.NoError(t, recv.Close()) })

		resp := gt.R1(http.Get(recv.URL("/home"))).NoError(t)
		body := gt.R1(io.ReadAll(resp.Body)).NoError(t)
		gt.NoError(t, resp.Body.Close())
		gt.V(t, resp.StatusCode).Equal(http.StatusOK)
		gt.True(t, strings.Contains(string(body), "All set"))

		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err := recv.Wait(waitCtx)
		gt.True(t, errors.Is(err, types.ErrCallbackTimeout))
	})

	t.Run("error redirect renders message", func(t *testing.T) {
		recv := gt.R1(loopback.Start(ctx, []string{"/home", loopback.ErrorPath})).NoError(t)
		t.Cleanup(func() { gt.NoError(t, recv.Close()) })

		resp := gt.R1(http.Get(recv.URL("/error?message=Installation+cancelled"))).NoError(t)
		body := gt.R1(io.ReadAll(resp.Body)).NoError(t)
		gt.NoError(t, resp.Body.Close())
		gt.True(t, strings.Contains(string(body), "Installation cancelled"))

		result := gt.R1(recv.Wait(ctx)).NoError(t)
		gt.V(t, result.Path).Equal(loopback.ErrorPath)
		gt.V(t, loopback.ErrorMessage(result.Query)).Equal("Installation cancelled")
	})

	t.Run("close is idempotent", func(t *testing.T) {
		recv := gt.R1(loopback.Start(ctx, []string{"/oauth-callback"})).NoError(t)
		gt.NoError(t, recv.Close())
		gt.NoError(t, recv.Close())
	})

	t.Run("no path is an invalid option", func(t *testing.T) {
		_, err := loopback.Start(ctx, nil)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestErrorMessage(t *testing.T) {
	gt.V(t, loopback.ErrorMessage(map[string][]string{"error": {"access_denied"}})).Equal("access_denied")
	gt.V(t, loopback.ErrorMessage(map[string][]string{
		"error":             {"access_denied"},
		"error_description": {"user denied"},
	})).Equal("user denied")
	gt.V(t, loopback.ErrorMessage(nil)).Equal("unknown error")
}
