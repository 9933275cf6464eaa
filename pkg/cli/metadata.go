package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
)

// DetectRepoFromGit resolves owner and repository name from the origin
// remote of the git repository in the current directory. Used by the update
// command when --owner/--repo are not given.
func DetectRepoFromGit(ctx context.Context) (string, string, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, name := parseRemoteURL(url)
	if owner == "" || name == "" {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	logging.From(ctx).Debug("Detected repository from git remote",
		slog.String("owner", owner),
		slog.String("repo", name),
	)

	return owner, name, nil
}

// parseRemoteURL handles the two common remote shapes:
// git@github.com:owner/repo.git and https://github.com/owner/repo.git
func parseRemoteURL(url string) (string, string) {
	var path string

	if strings.HasPrefix(url, "git@github.com:") {
		path = strings.TrimPrefix(url, "git@github.com:")
	} else if strings.Contains(url, "github.com/") {
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	} else {
		return "", ""
	}

	path = strings.TrimSuffix(path, ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 {
		return "", ""
	}

	return ownerRepo[0], ownerRepo[1]
}
