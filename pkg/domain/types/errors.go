package types

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrNotSignedIn      = goerr.New("not signed in")
	ErrSignInFailed     = goerr.New("sign-in failed")
	ErrActionInFlight   = goerr.New("action already in flight")
	ErrCallbackTimeout  = goerr.New("timed out waiting for browser callback")
	ErrCallbackRejected = goerr.New("browser callback reported an error")

	ErrProvisioningFailed    = goerr.New("provisioning failed")
	ErrCredentialFetchFailed = goerr.New("credential fetch failed")
	ErrCredentialSaveFailed  = goerr.New("credential save failed")
	ErrInstallLinkFailed     = goerr.New("install link failed")
	ErrRepositoryListFailed  = goerr.New("repository list failed")
	ErrActivationFailed      = goerr.New("activation failed")
	ErrDeactivationFailed    = goerr.New("deactivation failed")
)

// APIError is a non-success answer (or transport failure) from the backend.
// StatusCode is 0 and Cause is set when no response was received.
type APIError struct {
	Kind       error
	StatusCode int
	Detail     string
	Cause      error
}

func (x *APIError) Error() string {
	switch {
	case x.Cause != nil:
		return fmt.Sprintf("%v: %v", x.Kind, x.Cause)
	case x.Detail != "":
		return fmt.Sprintf("%v: status=%d: %s", x.Kind, x.StatusCode, x.Detail)
	default:
		return fmt.Sprintf("%v: status=%d", x.Kind, x.StatusCode)
	}
}

func (x *APIError) Unwrap() []error {
	errs := []error{x.Kind}
	if x.Cause != nil {
		errs = append(errs, x.Cause)
	}
	return errs
}

// UserMessage returns the server supplied detail if err carries one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
