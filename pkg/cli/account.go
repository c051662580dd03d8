package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leetvault/leetvault/pkg/cli/config"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func (x *CLI) loginCommand() *cli.Command {
	var (
		google    config.Google
		noBrowser bool
	)

	return &cli.Command{
		Name:  "login",
		Usage: "Sign in with Google",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "no-browser",
				Usage:       "Print the sign-in URL instead of opening a browser",
				Destination: &noBrowser,
			},
		}, google.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Debug("starting login",
				slog.Any("google", google),
				slog.Any("backend", x.backend),
			)

			provider, err := google.NewProvider(x.openBrowser(noBrowser))
			if err != nil {
				return err
			}
			uc, err := x.newUseCase(infra.WithIdentityProvider(provider))
			if err != nil {
				return err
			}

			identity, err := uc.SignIn(ctx)
			if err != nil {
				return err
			}

			okColor.Fprintf(x.out, "Signed in as %s\n", identity.Email)
			return nil
		},
	}
}

func (x *CLI) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the signed-in identity",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			if err := uc.SignOut(ctx); err != nil {
				return err
			}
			fmt.Fprintln(x.out, "Signed out")
			return nil
		},
	}
}

func (x *CLI) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in identity",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			identity, err := uc.CurrentIdentity(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(x.out, "%s (%s)\n", identity.Email, identity.Subject)
			return nil
		},
	}
}

func (x *CLI) statusCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:  "status",
		Usage: "Load the account and show the integration state",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the state as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}

			if asJSON {
				return renderJSON(x.out, o.View())
			}
			renderView(x.out, o.View())
			return nil
		},
	}
}
