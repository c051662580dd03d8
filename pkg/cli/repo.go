package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func (x *CLI) repoCommand() *cli.Command {
	return &cli.Command{
		Name:    "repo",
		Aliases: []string{"repository"},
		Usage:   "Choose the repository LeetVault syncs to",
		Commands: []*cli.Command{
			x.repoListCommand(),
			x.repoActivateCommand(),
			x.repoDeactivateCommand(),
		},
	}
}

func (x *CLI) repoListCommand() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:  "list",
		Usage: "List repositories available to the GitHub App installation",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print repositories as JSON",
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

			v := o.View()
			if asJSON {
				return renderJSON(x.out, v.Repositories)
			}
			if v.GitHub != model.GitHubRepoChoice || v.EmptyDiscovery {
				renderGitHub(x.out, v)
				return nil
			}
			renderRepositories(x.out, v.Repositories)
			return nil
		},
	}
}

func (x *CLI) repoActivateCommand() *cli.Command {
	var branch string

	return &cli.Command{
		Name:      "activate",
		Usage:     "Make a repository the sync target, replacing the current one",
		ArgsUsage: "[owner/repo]",
		Description: "Without an argument the GitHub origin of the git repository in the " +
			"current directory is used. The branch defaults to the repository's default branch.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch to sync to",
				Destination: &branch,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo := types.RepoFullName(c.Args().First())
			if repo == "" {
				detected, err := DetectRepository(".")
				if err != nil {
					return goerr.Wrap(err, "give owner/repo or run in a clone of the repository")
				}
				logging.From(ctx).Info("detected repository from git origin", slog.Any("repo", detected))
				repo = detected
			}

			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}

			if err := o.ActivateRepository(ctx, repo, types.BranchName(branch)); err != nil {
				if notice := o.View().Notice; notice != "" {
					return goerr.Wrap(err, notice)
				}
				return err
			}

			renderGitHub(x.out, o.View())
			return nil
		},
	}
}

func (x *CLI) repoDeactivateCommand() *cli.Command {
	return &cli.Command{
		Name:  "deactivate",
		Usage: "Stop syncing to the active repository",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := x.newUseCase()
			if err != nil {
				return err
			}
			o, err := startOrchestrator(ctx, uc)
			if err != nil {
				return err
			}

			if err := o.DeactivateRepository(ctx); err != nil {
				if notice := o.View().Notice; notice != "" {
					return goerr.Wrap(err, notice)
				}
				return err
			}

			fmt.Fprintln(x.out, "Repository deactivated")
			renderGitHub(x.out, o.View())
			return nil
		},
	}
}
