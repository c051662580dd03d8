package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestRepoFullName(t *testing.T) {
	testCases := []struct {
		name  string
		input types.RepoFullName
		owner string
		repo  string
		valid bool
	}{
		{name: "owner and repo", input: "org/repo", owner: "org", repo: "repo", valid: true},
		{name: "missing slash", input: "repo", owner: "", repo: "", valid: false},
		{name: "empty owner", input: "/repo", owner: "", repo: "repo", valid: false},
		{name: "nested path", input: "org/repo/extra", owner: "org", repo: "repo/extra", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.input.Owner()).Equal(tc.owner)
			gt.V(t, tc.input.Name()).Equal(tc.repo)
			gt.V(t, tc.input.Valid()).Equal(tc.valid)
		})
	}
}

func TestBranchOrDefault(t *testing.T) {
	gt.V(t, types.BranchName("").OrDefault()).Equal(types.DefaultBranch)
	gt.V(t, types.BranchName("develop").OrDefault()).Equal(types.BranchName("develop"))
}

func TestEmailNormalize(t *testing.T) {
	gt.V(t, types.Email("  U@X.com ").Normalize()).Equal(types.Email("u@x.com"))
}

func TestSecretsAreMasked(t *testing.T) {
	cookie := types.SessionCookie("very-secret-cookie")
	token := types.CSRFToken("very-secret-token")

	gt.V(t, fmt.Sprint(cookie)).Equal("***********")
	gt.V(t, fmt.Sprint(token)).Equal("***********")
	gt.V(t, cookie.Preview(4)).Equal("very...")
	gt.V(t, types.SessionCookie("abc").Preview(50)).Equal("abc")
}

func TestUserMessage(t *testing.T) {
	t.Run("detail is surfaced verbatim", func(t *testing.T) {
		err := goerr.Wrap(&types.APIError{
			Kind:       types.ErrActivationFailed,
			StatusCode: 404,
			Detail:     "User not found",
		}, "failed to activate repository")

		gt.V(t, types.UserMessage(err, "generic")).Equal("User not found")
		gt.True(t, errors.Is(err, types.ErrActivationFailed))
	})

	t.Run("fallback without detail", func(t *testing.T) {
		err := goerr.Wrap(types.ErrDeactivationFailed, "failed")
		gt.V(t, types.UserMessage(err, "generic")).Equal("generic")
	})

	t.Run("transport failure keeps both kind and cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := goerr.Wrap(&types.APIError{
			Kind:  types.ErrProvisioningFailed,
			Cause: cause,
		}, "failed to check user")

		gt.True(t, errors.Is(err, types.ErrProvisioningFailed))
		gt.True(t, errors.Is(err, cause))
		gt.V(t, types.UserMessage(err, "generic")).Equal("generic")
	})
}
