package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of key, or skips the test when it is unset.
// Tests against live services use it for their endpoints and accounts.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		t.Skipf("%s is not set", key)
	}
	return v
}
