package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/cli/config"
	"github.com/m-mizutani/repovet/pkg/domain/types"
)

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["token"])
	gt.True(t, flagNames["api-url"])
}

func TestGitHubToken(t *testing.T) {
	githubConfig := &config.GitHub{}
	gt.V(t, githubConfig.Token()).Equal(types.GitHubToken(""))

	// The interactive prompt fallback sets the token after flag parsing.
	githubConfig.SetToken("ghp_dummy")
	gt.V(t, githubConfig.Token()).Equal(types.GitHubToken("ghp_dummy"))
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
}
