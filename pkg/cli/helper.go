package cli

import (
	"context"
	"errors"
	"os"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/infra/browser"
	"github.com/leetvault/leetvault/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// newUseCase wires the backend client and the session store from global flags.
func (x *CLI) newUseCase(options ...infra.Option) (*usecase.UseCase, error) {
	client, err := x.backend.NewClient(nil)
	if err != nil {
		return nil, err
	}
	store, err := x.session.NewStore()
	if err != nil {
		return nil, err
	}

	clients := infra.New(append([]infra.Option{
		infra.WithAccountProvisioner(client),
		infra.WithCredentialStore(client),
		infra.WithGitHubLink(client),
		infra.WithIdentityStore(store),
	}, options...)...)

	return usecase.New(clients), nil
}

// openBrowser returns the browser to use, or a printer when noBrowser is set.
func (x *CLI) openBrowser(noBrowser bool) interfaces.Browser {
	if noBrowser {
		return browser.NewPrinter(os.Stderr)
	}
	if x.browser != nil {
		return x.browser
	}
	return browser.New()
}

// startOrchestrator loads the signed-in account. A missing session is reported
// with a hint to sign in first.
func startOrchestrator(ctx context.Context, uc *usecase.UseCase) (*usecase.Orchestrator, error) {
	identity, err := uc.CurrentIdentity(ctx)
	if err != nil {
		if errors.Is(err, types.ErrNotSignedIn) {
			return nil, goerr.Wrap(err, "run `leetvault login` first")
		}
		return nil, err
	}

	o := uc.NewOrchestrator(identity)
	if err := o.Start(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
