package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
)

// UpdateRepository applies a single metadata patch and returns the server's
// post-edit view of the repository. The in-memory Repository the caller read
// earlier is never mutated; re-fetch to observe the new state.
func (x *UseCase) UpdateRepository(ctx context.Context, req *model.UpdateRequest) (*model.Repository, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	updated, err := x.clients.GitHub().UpdateRepo(ctx, req.Owner, req.Repo, &req.Patch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update repository",
			goerr.V("owner", req.Owner),
			goerr.V("repo", req.Repo),
		)
	}

	logging.From(ctx).Info("Updated repository",
		slog.String("owner", req.Owner),
		slog.String("repo", req.Repo),
	)

	return updated, nil
}

// UpdateRepositories applies patches one by one, strictly in input order and
// never concurrently: the API enforces per-principal rate limits and there
// is no backoff layer here to recover from throttling. A failed item is
// recorded and the batch continues; the returned outcomes carry exactly one
// entry per request, in submission order.
func (x *UseCase) UpdateRepositories(ctx context.Context, reqs []*model.UpdateRequest) ([]*model.UpdateOutcome, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)
	outcomes := make([]*model.UpdateOutcome, 0, len(reqs))

	for i, req := range reqs {
		outcome := &model.UpdateOutcome{
			Owner: req.Owner,
			Repo:  req.Repo,
		}

		if err := x.updateOne(ctx, req); err != nil {
			outcome.Error = err.Error()
			logger.Warn("Failed to update repository",
				slog.Int("progress", i+1),
				slog.Int("total", len(reqs)),
				slog.String("owner", req.Owner),
				slog.String("repo", req.Repo),
				slog.String("error", err.Error()),
			)
		} else {
			outcome.Success = true
			logger.Info("Updated repository",
				slog.Int("progress", i+1),
				slog.Int("total", len(reqs)),
				slog.String("owner", req.Owner),
				slog.String("repo", req.Repo),
			)
		}

		outcomes = append(outcomes, outcome)
	}

	var succeeded int
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		}
	}
	logger.Info("Completed batch update",
		slog.Int("total", len(outcomes)),
		slog.Int("success", succeeded),
		slog.Int("failure", len(outcomes)-succeeded),
	)

	return outcomes, nil
}

func (x *UseCase) updateOne(ctx context.Context, req *model.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := x.clients.GitHub().UpdateRepo(ctx, req.Owner, req.Repo, &req.Patch); err != nil {
		return err
	}
	return nil
}
