package config_test

import (
	"context"
	"testing"

	"github.com/leetvault/leetvault/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryDisabled(t *testing.T) {
	sentryConfig := &config.Sentry{}
	gt.False(t, sentryConfig.Enabled())
	gt.NoError(t, sentryConfig.Configure(context.Background()))
	sentryConfig.Flush()
}
