package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repovet/pkg/cli/config"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/infra"
	"github.com/m-mizutani/repovet/pkg/output"
	"github.com/m-mizutani/repovet/pkg/usecase"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"github.com/m-mizutani/repovet/pkg/utils/safe"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func analyzeCommand() *cli.Command {
	var (
		github config.GitHub
		sentry config.Sentry
		user   string
		file   string
		fix    bool
	)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"an"},
		Usage:   "Report repositories with missing or malformed metadata",
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
				Usage:       "Write the report to a file instead of stdout",
				Sources:     cli.EnvVars("REPOVET_FILE"),
				Destination: &file,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "Interactively fill in missing metadata and apply the edits",
				Destination: &fix,
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
			if fix && !subject.Authenticated {
				return goerr.Wrap(types.ErrInvalidOption, "--fix requires a valid token; edits apply only to your own repositories")
			}

			uc := usecase.New(infra.New(infra.WithGitHub(client)))

			repos, err := uc.FetchRepositories(ctx, subject, types.SortUpdated)
			if err != nil {
				return err
			}

			analysis := usecase.AnalyzeRepositories(repos)
			report := output.Report(analysis, subject.Username)

			if file == "" {
				fmt.Print(report)
			} else if err := writeReport(file, report); err != nil {
				return err
			}

			if !fix || analysis.Clean() {
				return nil
			}
			if !interactive() {
				return goerr.Wrap(types.ErrInvalidOption, "--fix needs an interactive terminal")
			}

			reqs := collectFixes(analysis)
			if len(reqs) == 0 {
				pterm.Info.Println("No edits entered, nothing to update")
				return nil
			}

			outcomes, err := uc.UpdateRepositories(ctx, reqs)
			if err != nil {
				return err
			}
			reportOutcomes(ctx, outcomes)

			return nil
		},
	}
}

func writeReport(path, report string) error {
	fd, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create report file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	if _, err := fd.WriteString(report); err != nil {
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	return nil
}

// collectFixes prompts for a replacement value per defective repository.
// Empty input skips the repository; a repository defective in more than one
// category gets a single merged patch.
func collectFixes(analysis *model.Analysis) []*model.UpdateRequest {
	var order []*model.UpdateRequest
	index := map[string]*model.UpdateRequest{}

	request := func(repo *model.Repository) *model.UpdateRequest {
		if req, ok := index[repo.FullName()]; ok {
			return req
		}
		req := &model.UpdateRequest{Owner: repo.Owner, Repo: repo.Name}
		index[repo.FullName()] = req
		order = append(order, req)
		return req
	}

	for _, repo := range analysis.MissingDescription {
		v := promptValue(fmt.Sprintf("Description for %s (empty to skip)", repo.FullName()))
		if v != "" {
			request(repo).Patch.Description = &v
		}
	}

	homepageTargets := append(append([]*model.Repository{}, analysis.MissingHomepage...), analysis.BrokenHomepage...)
	for _, repo := range homepageTargets {
		label := fmt.Sprintf("Homepage for %s (empty to skip)", repo.FullName())
		if repo.Homepage != "" {
			label = fmt.Sprintf("Homepage for %s, currently %q (empty to skip)", repo.FullName(), repo.Homepage)
		}
		v := promptValue(label)
		if v != "" {
			request(repo).Patch.Homepage = &v
		}
	}

	// Drop repositories where every prompt was skipped.
	reqs := make([]*model.UpdateRequest, 0, len(order))
	for _, req := range order {
		if !req.Patch.IsEmpty() {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func promptValue(label string) string {
	v, err := pterm.DefaultInteractiveTextInput.Show(label)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func reportOutcomes(ctx context.Context, outcomes []*model.UpdateOutcome) {
	var succeeded int
	for _, o := range outcomes {
		if o.Success {
			succeeded++
			continue
		}
		pterm.Warning.Printf("%s/%s: %s\n", o.Owner, o.Repo, o.Error)
	}

	if succeeded == len(outcomes) {
		pterm.Success.Printf("Updated %d repositories\n", succeeded)
	} else {
		pterm.Warning.Printf("Updated %d of %d repositories\n", succeeded, len(outcomes))
	}

	logging.From(ctx).Info("Applied metadata fixes",
		slog.Int("total", len(outcomes)),
		slog.Int("success", succeeded),
	)
}
