package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/repovet/pkg/cli/config"
	"github.com/m-mizutani/repovet/pkg/domain/interfaces"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// resolveSession assembles the subject and API client before any pipeline
// step runs. Credential priority: --token flag, GITHUB_ACCESS_TOKEN, then an
// interactive prompt (empty input means anonymous). A rejected credential
// downgrades to anonymous access with a warning, never a fatal error.
func resolveSession(ctx context.Context, ghCfg *config.GitHub, username string) (model.Subject, interfaces.GitHubClient, error) {
	logger := logging.From(ctx)

	if ghCfg.Token() == "" && interactive() {
		ghCfg.SetToken(promptToken())
	}

	client, err := ghCfg.NewClient(ctx)
	if err != nil {
		return model.Subject{}, nil, err
	}

	if ghCfg.Token() != "" {
		login, err := client.AuthenticatedLogin(ctx)
		switch {
		case err == nil:
			// An explicit --user different from the principal means a
			// public listing of that user, not the principal's own repos.
			if username == "" || username == login {
				return model.Subject{Username: login, Authenticated: true}, client, nil
			}
			return model.Subject{Username: username}, client, nil

		case errors.Is(err, types.ErrBadCredential):
			logger.Warn("Credential was rejected, falling back to anonymous access",
				slog.Any("token", ghCfg.Token()),
			)
			client, err = ghCfg.NewAnonymousClient(ctx)
			if err != nil {
				return model.Subject{}, nil, err
			}

		default:
			return model.Subject{}, nil, err
		}
	}

	if username == "" && interactive() {
		username = promptUsername()
	}

	subject := model.Subject{Username: username}
	if err := subject.Validate(); err != nil {
		return model.Subject{}, nil, err
	}

	return subject, client, nil
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptToken() types.GitHubToken {
	v, err := pterm.DefaultInteractiveTextInput.
		WithMask("*").
		Show("GitHub access token (leave empty for anonymous access)")
	if err != nil {
		return ""
	}
	return types.GitHubToken(strings.TrimSpace(v))
}

func promptUsername() string {
	v, err := pterm.DefaultInteractiveTextInput.Show("GitHub username")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
