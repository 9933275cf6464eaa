package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
)

// FetchRepositories retrieves the complete repository listing for the
// subject and applies the authoritative client-side sort. The underlying
// client paginates; any page failure aborts the whole fetch with no partial
// result.
func (x *UseCase) FetchRepositories(ctx context.Context, subject model.Subject, key types.SortKey) ([]*model.Repository, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)
	logger.Info("Fetching repositories",
		slog.Any("subject", subject),
		slog.String("sort", string(key)),
	)

	var repos []*model.Repository
	var err error
	if subject.Authenticated {
		repos, err = x.clients.GitHub().ListOwnRepos(ctx, key)
	} else {
		repos, err = x.clients.GitHub().ListUserRepos(ctx, subject.Username, key)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch repositories", goerr.V("subject", subject))
	}

	logger.Info("Fetched repositories",
		slog.Any("subject", subject),
		slog.Int("count", len(repos)),
	)

	// Server-side sort is only a hint; the sorter owns the final order.
	return SortRepositories(repos, key), nil
}
