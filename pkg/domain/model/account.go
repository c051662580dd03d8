package model

import "github.com/leetvault/leetvault/pkg/domain/types"

// AccountSnapshot is the integration state returned by one provisioning round trip.
// It is never mutated in place; use WithActivation to derive a replacement.
type AccountSnapshot struct {
	IsNewUser       bool
	GitHubConnected bool
	InstallationID  types.InstallationID
	Activation      *RepoActivation
}

// WithActivation returns a copy of the snapshot with the activation replaced.
func (x AccountSnapshot) WithActivation(activation *RepoActivation) AccountSnapshot {
	if activation != nil {
		copied := *activation
		activation = &copied
	}
	x.Activation = activation
	return x
}

func (x AccountSnapshot) HasInstallation() bool {
	return x.GitHubConnected && x.InstallationID != ""
}
