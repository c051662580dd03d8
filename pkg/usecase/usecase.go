package usecase

import (
	"github.com/leetvault/leetvault/pkg/infra"
)

// UseCase holds the backend, session and identity clients shared by the
// identity operations and every Orchestrator it creates.
type UseCase struct {
	clients *infra.Clients
}

// New returns a UseCase over clients. A nil clients is treated as an empty set;
// identity operations then fail with types.ErrInvalidOption.
func New(clients *infra.Clients) *UseCase {
	if clients == nil {
		clients = infra.New()
	}
	return &UseCase{
		clients: clients,
	}
}
