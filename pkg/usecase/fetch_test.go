package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/domain/mock"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/infra"
	"github.com/m-mizutani/repovet/pkg/usecase"
)

func TestFetchRepositoriesAnonymous(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubClientMock{}
	mockGH.ListUserReposFunc = func(ctx context.Context, username string, sortHint types.SortKey) ([]*model.Repository, error) {
		return []*model.Repository{
			{Owner: username, Name: "old", UpdatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Owner: username, Name: "new", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}, nil
	}

	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	repos, err := uc.FetchRepositories(ctx, model.Subject{Username: "octocat"}, types.SortUpdated)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)

	// Client-side sort is authoritative even though the hint was forwarded.
	gt.V(t, repos[0].Name).Equal("new")

	calls := mockGH.ListUserReposCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Username).Equal("octocat")
	gt.V(t, calls[0].SortHint).Equal(types.SortUpdated)
	gt.V(t, len(mockGH.ListOwnReposCalls())).Equal(0)
}

func TestFetchRepositoriesAuthenticated(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubClientMock{}
	mockGH.ListOwnReposFunc = func(ctx context.Context, sortHint types.SortKey) ([]*model.Repository, error) {
		return []*model.Repository{
			{Owner: "me", Name: "secret", Private: true, Authenticated: true},
		}, nil
	}

	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	repos, err := uc.FetchRepositories(ctx, model.Subject{Username: "me", Authenticated: true}, types.SortStars)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(1)
	gt.True(t, repos[0].Authenticated)
	gt.V(t, len(mockGH.ListUserReposCalls())).Equal(0)
}

func TestFetchRepositoriesValidatesSubject(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New(infra.WithGitHub(&mock.GitHubClientMock{})))

	_, err := uc.FetchRepositories(ctx, model.Subject{}, types.SortUpdated)
	gt.Error(t, err)
}

func TestFetchRepositoriesTransportErrorAborts(t *testing.T) {
	ctx := context.Background()

	mockGH := &mock.GitHubClientMock{}
	mockGH.ListUserReposFunc = func(ctx context.Context, username string, sortHint types.SortKey) ([]*model.Repository, error) {
		return nil, goerr.Wrap(types.ErrGitHubAPI, "boom")
	}

	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	repos, err := uc.FetchRepositories(ctx, model.Subject{Username: "octocat"}, types.SortUpdated)
	gt.Error(t, err)
	gt.V(t, len(repos)).Equal(0)
}

func TestFetchRepositoriesNoClient(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New())

	_, err := uc.FetchRepositories(ctx, model.Subject{Username: "octocat"}, types.SortUpdated)
	gt.Error(t, err)
}
