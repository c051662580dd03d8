package errutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError logs err and reports it to Sentry. The hub bound to ctx is used
// when present. Backend failures are tagged with their kind and status so that
// events group by the failing backend call.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()

	attrs := []any{slog.Any("error", err)}
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
		if id, ok := logging.RequestID(ctx); ok {
			scope.SetTag("request_id", string(id))
		}

		var apiErr *types.APIError
		if errors.As(err, &apiErr) {
			scope.SetTag("backend.kind", fmt.Sprintf("%v", apiErr.Kind))
			scope.SetTag("backend.status", fmt.Sprintf("%d", apiErr.StatusCode))
			attrs = append(attrs, slog.Int("backend.status", apiErr.StatusCode))
		}
	})
	evID := hub.CaptureException(err)

	if evID != nil {
		attrs = append(attrs, slog.Any("sentry.EventID", *evID))
	}
	logging.From(ctx).Error(msg, attrs...)
}
