package usecase

import (
	"sort"

	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRepositories returns a sorted copy of repos. Timestamp keys order
// newest first and compare as instants, not strings. Star counts order
// descending. Name keys order ascending with locale-aware collation. The
// sort is stable: equal keys keep their relative input order. Unknown keys
// fall back to updated.
func SortRepositories(repos []*model.Repository, key types.SortKey) []*model.Repository {
	sorted := make([]*model.Repository, len(repos))
	copy(sorted, repos)

	switch key {
	case types.SortCreated:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case types.SortPushed:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PushedAt.After(sorted[j].PushedAt)
		})
	case types.SortStars:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stars > sorted[j].Stars
		})
	case types.SortName:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return cl.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case types.SortFullName:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return cl.CompareString(sorted[i].FullName(), sorted[j].FullName()) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
	}

	return sorted
}
