package testutil_test

import (
	"testing"

	"github.com/leetvault/leetvault/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_LEETVAULT_TESTUTIL", "value")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_LEETVAULT_TESTUTIL")).Equal("value")
}
