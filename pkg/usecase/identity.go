package usecase

import (
	"context"
	"log/slog"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SignIn authenticates with the identity provider, persists the identity and
// registers the account with the backend. Registration failure is logged only;
// the user stays signed in and the next provisioning call creates the account.
func (x *UseCase) SignIn(ctx context.Context) (*model.Identity, error) {
	if x.clients.IdentityProvider() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "identity provider is not configured")
	}
	if x.clients.IdentityStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "identity store is not configured")
	}

	identity, err := x.clients.IdentityProvider().Authenticate(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate")
	}
	identity.Email = identity.Email.Normalize()
	if err := identity.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrSignInFailed, "identity provider returned an invalid identity", goerr.V("cause", err))
	}

	if err := x.clients.IdentityStore().Save(ctx, identity); err != nil {
		return nil, goerr.Wrap(err, "failed to save identity")
	}

	logger := logging.From(ctx).With(slog.Any("email", identity.Email))
	if p := x.clients.AccountProvisioner(); p != nil {
		if err := p.Create(ctx, identity.Email); err != nil {
			logger.Warn("failed to register account, continuing signed in", slog.Any("error", err))
		}
	}
	logger.Info("signed in")

	return identity, nil
}

func (x *UseCase) SignOut(ctx context.Context) error {
	if x.clients.IdentityStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "identity store is not configured")
	}
	if err := x.clients.IdentityStore().Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to sign out")
	}
	logging.From(ctx).Info("signed out")
	return nil
}

// CurrentIdentity returns the persisted identity or types.ErrNotSignedIn.
func (x *UseCase) CurrentIdentity(ctx context.Context) (*model.Identity, error) {
	if x.clients.IdentityStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "identity store is not configured")
	}
	identity, err := x.clients.IdentityStore().Load(ctx)
	if err != nil {
		return nil, err
	}
	return identity, nil
}
