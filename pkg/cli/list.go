package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repovet/pkg/cli/config"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/infra"
	"github.com/m-mizutani/repovet/pkg/output"
	"github.com/m-mizutani/repovet/pkg/usecase"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"github.com/m-mizutani/repovet/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		github  config.GitHub
		sentry  config.Sentry
		user    string
		file    string
		sortKey string
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Fetch and render a user's repositories (text, JSON, or CSV by file extension)",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "GitHub username (defaults to the authenticated principal)",
				Sources:     cli.EnvVars("REPOVET_USER"),
				Destination: &user,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Output file; overwritten if it exists (stdout when omitted)",
				Sources:     cli.EnvVars("REPOVET_FILE"),
				Destination: &file,
			},
			&cli.StringFlag{
				Name:        "sort",
				Aliases:     []string{"s"},
				Usage:       "Sort key [updated|created|pushed|stars|name|full_name]",
				Sources:     cli.EnvVars("REPOVET_SORT"),
				Destination: &sortKey,
				Value:       "updated",
			},
		}, github.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			subject, client, err := resolveSession(ctx, &github, user)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			repos, err := uc.FetchRepositories(ctx, subject, types.ParseSortKey(sortKey))
			if err != nil {
				return err
			}

			format := types.FormatText
			if file != "" {
				format = output.FormatForFilename(file)
			}

			rendered, err := output.Render(repos, subject.Username, format)
			if err != nil {
				return err
			}

			if file == "" {
				fmt.Print(rendered)
				return nil
			}

			// Overwrite semantics: an existing file is replaced.
			fd, err := os.Create(file)
			if err != nil {
				return goerr.Wrap(err, "failed to create output file", goerr.V("path", file))
			}
			defer safe.Close(fd)

			if _, err := fd.WriteString(rendered); err != nil {
				return goerr.Wrap(err, "failed to write output file", goerr.V("path", file))
			}

			logging.From(ctx).Info("Wrote repository listing",
				slog.String("path", file),
				slog.String("format", string(format)),
				slog.Int("count", len(repos)),
			)

			return nil
		},
	}
}
