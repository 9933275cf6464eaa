package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/usecase"
)

func TestSortRepositoriesByStars(t *testing.T) {
	repos := []*model.Repository{
		{Name: "low", Stars: 1},
		{Name: "first-equal", Stars: 5},
		{Name: "second-equal", Stars: 5},
		{Name: "high", Stars: 10},
	}

	sorted := usecase.SortRepositories(repos, types.SortStars)

	gt.V(t, sorted[0].Name).Equal("high")
	// Stable sort: equal star counts keep their input order.
	gt.V(t, sorted[1].Name).Equal("first-equal")
	gt.V(t, sorted[2].Name).Equal("second-equal")
	gt.V(t, sorted[3].Name).Equal("low")

	// Input slice is left untouched.
	gt.V(t, repos[0].Name).Equal("low")
}

func TestSortRepositoriesByUpdated(t *testing.T) {
	older := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	newer := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// Same instant as newer, written in another zone: must not sort apart.
	newerOffset := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))

	repos := []*model.Repository{
		{Name: "old", UpdatedAt: older},
		{Name: "new", UpdatedAt: newer},
		{Name: "new-offset", UpdatedAt: newerOffset},
	}

	sorted := usecase.SortRepositories(repos, types.SortUpdated)

	gt.V(t, sorted[0].Name).Equal("new")
	gt.V(t, sorted[1].Name).Equal("new-offset")
	gt.V(t, sorted[2].Name).Equal("old")
}

func TestSortRepositoriesByName(t *testing.T) {
	repos := []*model.Repository{
		{Name: "zeta"},
		{Name: "Alpha"},
		{Name: "beta"},
	}

	sorted := usecase.SortRepositories(repos, types.SortName)

	gt.V(t, sorted[0].Name).Equal("Alpha")
	gt.V(t, sorted[1].Name).Equal("beta")
	gt.V(t, sorted[2].Name).Equal("zeta")
}

func TestSortRepositoriesByFullName(t *testing.T) {
	repos := []*model.Repository{
		{Owner: "zoo", Name: "app"},
		{Owner: "acme", Name: "zapp"},
	}

	sorted := usecase.SortRepositories(repos, types.SortFullName)

	gt.V(t, sorted[0].Owner).Equal("acme")
	gt.V(t, sorted[1].Owner).Equal("zoo")
}

func TestSortRepositoriesUnknownKeyFallsBackToUpdated(t *testing.T) {
	repos := []*model.Repository{
		{Name: "old", UpdatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "new", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	sorted := usecase.SortRepositories(repos, types.SortKey("bogus"))

	gt.V(t, sorted[0].Name).Equal("new")
	gt.V(t, sorted[1].Name).Equal("old")
}

func TestParseSortKey(t *testing.T) {
	gt.V(t, types.ParseSortKey("stars")).Equal(types.SortStars)
	gt.V(t, types.ParseSortKey(" Updated ")).Equal(types.SortUpdated)
	gt.V(t, types.ParseSortKey("FULL_NAME")).Equal(types.SortFullName)
	gt.V(t, types.ParseSortKey("bogus")).Equal(types.SortUpdated)
	gt.V(t, types.ParseSortKey("")).Equal(types.SortUpdated)
}
