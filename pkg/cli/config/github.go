package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/infra/ghclient"
	"github.com/urfave/cli/v3"
)

// GitHub holds the API credential and endpoint. The token comes from the
// flag or GITHUB_ACCESS_TOKEN; when both are absent the cli layer may fill
// it from an interactive prompt before NewClient is called.
type GitHub struct {
	token  types.GitHubToken `masq:"secret"`
	apiURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Aliases:     []string{"t"},
			Usage:       "GitHub access token (empty for anonymous access)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("GITHUB_ACCESS_TOKEN"),
			Destination: (*string)(&x.token),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("REPOVET_API_URL"),
			Destination: &x.apiURL,
		},
	}
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

// SetToken is for the interactive prompt fallback in the cli layer.
func (x *GitHub) SetToken(token types.GitHubToken) {
	x.token = token
}

func (x *GitHub) NewClient(ctx context.Context, options ...ghclient.Option) (*ghclient.Client, error) {
	if x.apiURL != "" {
		options = append(options, ghclient.WithBaseURL(x.apiURL))
	}
	return ghclient.New(ctx, x.token, options...)
}

// NewAnonymousClient builds a client without the credential, for the
// downgrade path when the credential turns out to be invalid.
func (x *GitHub) NewAnonymousClient(ctx context.Context, options ...ghclient.Option) (*ghclient.Client, error) {
	if x.apiURL != "" {
		options = append(options, ghclient.WithBaseURL(x.apiURL))
	}
	return ghclient.New(ctx, "", options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("apiURL", x.apiURL),
	)
}
