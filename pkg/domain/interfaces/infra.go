package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
)

// GitHubClient is the remote API surface the pipeline consumes. The
// implementation in pkg/infra/ghclient handles pagination internally; list
// methods return the complete concatenated result in server order.
type GitHubClient interface {
	// AuthenticatedLogin returns the login of the principal behind the
	// configured credential.
	AuthenticatedLogin(ctx context.Context) (string, error)

	// ListOwnRepos lists all repositories of the authenticated principal,
	// private ones included. sortHint is forwarded to the server where it
	// supports the key; authoritative ordering happens client-side.
	ListOwnRepos(ctx context.Context, sortHint types.SortKey) ([]*model.Repository, error)

	// ListUserRepos lists the public repositories of the named user.
	ListUserRepos(ctx context.Context, username string, sortHint types.SortKey) ([]*model.Repository, error)

	// GetRepo fetches a single repository.
	GetRepo(ctx context.Context, owner, repo string) (*model.Repository, error)

	// UpdateRepo applies a sparse metadata patch and returns the server's
	// view of the repository after the edit.
	UpdateRepo(ctx context.Context, owner, repo string, patch *model.RepositoryPatch) (*model.Repository, error)
}
