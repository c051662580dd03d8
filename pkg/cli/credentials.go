package cli

import (
	"context"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func (x *CLI) credentialsCommand() *cli.Command {
	return &cli.Command{
		Name:  "credentials",
		Usage: "Manage LeetCode credentials",
		Commands: []*cli.Command{
			x.credentialsSetCommand(),
			x.credentialsShowCommand(),
		},
	}
}

func (x *CLI) credentialsSetCommand() *cli.Command {
	var creds model.Credentials

	return &cli.Command{
		Name:  "set",
		Usage: "Save the LeetCode session cookie, CSRF token and username",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "session-cookie",
				Usage:       "Value of the LEETCODE_SESSION cookie",
				Sources:     cli.EnvVars("LEETVAULT_LEETCODE_SESSION"),
				Destination: (*string)(&creds.SessionCookie),
			},
			&cli.StringFlag{
				Name:        "csrf-token",
				Usage:       "Value of the csrftoken cookie",
				Sources:     cli.EnvVars("LEETVAULT_LEETCODE_CSRF_TOKEN"),
				Destination: (*string)(&creds.CSRFToken),
			},
			&cli.StringFlag{
				Name:        "username",
				Usage:       "LeetCode username",
				Sources:     cli.EnvVars("LEETVAULT_LEETCODE_USERNAME"),
				Destination: &creds.Username,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := creds.Validate(); err != nil {
				return err
			}

			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}

			if err := o.SaveCredentials(ctx, creds); err != nil {
				return goerr.Wrap(err, o.View().Notice)
			}

			okColor.Fprintln(x.out, o.View().Notice)
			renderCredentials(x.out, o.View())
			return nil
		},
	}
}

func (x *CLI) credentialsShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show the stored LeetCode credentials",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}
			renderCredentials(x.out, o.View())
			return nil
		},
	}
}
