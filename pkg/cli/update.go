package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repovet/pkg/cli/config"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/infra"
	"github.com/m-mizutani/repovet/pkg/usecase"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func updateCommand() *cli.Command {
	var (
		github      config.GitHub
		sentry      config.Sentry
		owner       string
		repo        string
		description string
		homepage    string
		private     bool
		issues      bool
		wiki        bool
		projects    bool
	)

	return &cli.Command{
		Name:    "update",
		Aliases: []string{"up"},
		Usage:   "Apply a metadata patch to one repository; only flags you set are sent",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Repository owner (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("REPOVET_OWNER"),
				Destination: &owner,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("REPOVET_REPO"),
				Destination: &repo,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "New repository description",
				Destination: &description,
			},
			&cli.StringFlag{
				Name:        "homepage",
				Usage:       "New homepage URL",
				Destination: &homepage,
			},
			&cli.BoolFlag{
				Name:        "private",
				Usage:       "Repository visibility",
				Destination: &private,
			},
			&cli.BoolFlag{
				Name:        "issues",
				Usage:       "Enable or disable the issue tracker",
				Destination: &issues,
			},
			&cli.BoolFlag{
				Name:        "wiki",
				Usage:       "Enable or disable the wiki",
				Destination: &wiki,
			},
			&cli.BoolFlag{
				Name:        "projects",
				Usage:       "Enable or disable projects",
				Destination: &projects,
			},
		}, github.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			if owner == "" || repo == "" {
				detectedOwner, detectedRepo, err := DetectRepoFromGit(ctx)
				if err != nil {
					return goerr.Wrap(err, "owner/repo not given and auto-detection failed")
				}
				if owner == "" {
					owner = detectedOwner
				}
				if repo == "" {
					repo = detectedRepo
				}
			}

			req := &model.UpdateRequest{Owner: owner, Repo: repo}
			if c.IsSet("description") {
				req.Patch.Description = &description
			}
			if c.IsSet("homepage") {
				req.Patch.Homepage = &homepage
			}
			if c.IsSet("private") {
				req.Patch.Private = &private
			}
			if c.IsSet("issues") {
				req.Patch.HasIssues = &issues
			}
			if c.IsSet("wiki") {
				req.Patch.HasWiki = &wiki
			}
			if c.IsSet("projects") {
				req.Patch.HasProjects = &projects
			}

			if github.Token() == "" && interactive() {
				github.SetToken(promptToken())
			}
			if github.Token() == "" {
				return goerr.Wrap(types.ErrInvalidOption, "update requires a token")
			}

			client, err := github.NewClient(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			updated, err := uc.UpdateRepository(ctx, req)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Updated %s\n", updated.FullName())
			logging.From(ctx).Info("Repository update applied",
				slog.String("owner", updated.Owner),
				slog.String("repo", updated.Name),
				slog.String("url", updated.URL()),
			)

			return nil
		},
	}
}
