package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/infra/loopback"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	homePath = "/home"

	// defaultReturnAddr matches the backend's default frontend URL (http://localhost:5173).
	defaultReturnAddr = "127.0.0.1:5173"
)

func (x *CLI) githubCommand() *cli.Command {
	return &cli.Command{
		Name:  "github",
		Usage: "Manage the GitHub App installation",
		Commands: []*cli.Command{
			x.githubConnectCommand(),
		},
	}
}

func (x *CLI) githubConnectCommand() *cli.Command {
	var (
		noBrowser  bool
		returnAddr string
		timeout    time.Duration
	)

	return &cli.Command{
		Name:  "connect",
		Usage: "Install the GitHub App and wait for the installation to finish",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "no-browser",
				Usage:       "Print the installation URL instead of opening a browser",
				Destination: &noBrowser,
			},
			&cli.StringFlag{
				Name:        "return-addr",
				Usage:       "Listen address that receives the browser after installation; must match the backend's frontend URL",
				Sources:     cli.EnvVars("LEETVAULT_RETURN_ADDR"),
				Destination: &returnAddr,
				Value:       defaultReturnAddr,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Time allowed to finish the installation",
				Destination: &timeout,
				Value:       loopback.DefaultTimeout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase(infra.WithBrowser(x.openBrowser(noBrowser)))
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}

			receiver, err := loopback.Start(ctx, []string{homePath, loopback.ErrorPath}, loopback.WithAddr(returnAddr))
			if err != nil {
				return err
			}
			defer func() {
				if err := receiver.Close(); err != nil {
					logging.From(ctx).Warn("failed to close return receiver", slog.Any("error", err))
				}
			}()

			if _, err := o.ConnectGitHub(ctx); err != nil {
				return goerr.Wrap(err, o.View().Notice)
			}
			fmt.Fprintln(x.out, "Waiting for the GitHub App installation to finish...")

			waitCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			result, err := receiver.Wait(waitCtx)
			if err != nil {
				return err
			}

			if result.Path == loopback.ErrorPath {
				return goerr.Wrap(types.ErrCallbackRejected, loopback.ErrorMessage(result.Query))
			}
			installationID := types.InstallationID(result.Query.Get("installation_id"))
			if installationID == "" {
				return goerr.Wrap(types.ErrCallbackRejected, "installation ID is missing in the return URL",
					goerr.V("query", result.Query.Encode()),
				)
			}

			if err := o.CompleteInstallation(ctx, installationID); err != nil {
				return err
			}

			okColor.Fprintf(x.out, "GitHub App installed (installation %s)\n", installationID)
			renderGitHub(x.out, o.View())
			return nil
		},
	}
}
