package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leetvault/leetvault/pkg/controller/server"
	"github.com/leetvault/leetvault/pkg/infra"
	"github.com/leetvault/leetvault/pkg/utils/errutil"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func (x *CLI) serveCommand() *cli.Command {
	var (
		addr      string
		noBrowser bool
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the account state and actions to a local front end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Binding address; the backend redirects installations to its frontend URL, so keep them in sync",
				Value:       defaultReturnAddr,
				Sources:     cli.EnvVars("LEETVAULT_ADDR"),
				Destination: &addr,
			},
			&cli.BoolFlag{
				Name:        "no-browser",
				Usage:       "Do not open installation URLs in a browser",
				Destination: &noBrowser,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Backend", x.backend),
				slog.Any("Session", x.session),
				slog.Any("Sentry", &x.sentry),
			)

			var options []infra.Option
			if !noBrowser {
				options = append(options, infra.WithBrowser(x.openBrowser(false)))
			}
			uc, err := x.newUseCase(options...)
			if err != nil {
				return err
			}

			identity, err := uc.CurrentIdentity(ctx)
			if err != nil {
				return goerr.Wrap(err, "run `leetvault login` first")
			}
			o := uc.NewOrchestrator(identity)
			// A failed load is kept as state; the front end retries with /api/reload.
			if err := o.Start(ctx); err != nil {
				errutil.HandleError(ctx, "failed to load account", err)
			}

			s := server.New(o)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
