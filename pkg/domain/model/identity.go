package model

import (
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Identity is the verified user returned by the identity provider.
type Identity struct {
	Subject types.Subject `yaml:"subject" json:"subject"`
	Email   types.Email   `yaml:"email" json:"email"`
}

func (x *Identity) Validate() error {
	if x.Subject == "" {
		return goerr.Wrap(types.ErrValidationFailed, "identity subject is empty")
	}
	if x.Email.Normalize() == "" {
		return goerr.Wrap(types.ErrValidationFailed, "identity email is empty")
	}
	return nil
}
