package cli

import (
	"context"

	"github.com/m-mizutani/repovet/pkg/utils/errutil"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// Version is set from the git tag at build time via
// -ldflags="-X github.com/m-mizutani/repovet/pkg/cli.Version=v1.0.0".
var Version = "dev"

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	// Captured in Before so the fatal-error report carries the
	// request-ID-scoped logger of the failed run.
	runCtx := context.Background()

	app := &cli.Command{
		Name:    "repovet",
		Usage:   "Inspect and maintain GitHub repository metadata",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("REPOVET_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Sources:     cli.EnvVars("REPOVET_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Sources:     cli.EnvVars("REPOVET_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			analyzeCommand(),
			updateCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			reqID, ctx := logging.CtxRequestID(ctx)
			ctx = logging.With(ctx, logging.Default().With("request_id", reqID))
			runCtx = ctx
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		errutil.HandleError(runCtx, "fatal error", err)
		return err
	}

	return nil
}
