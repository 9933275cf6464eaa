package usecase

import (
	"github.com/m-mizutani/repovet/pkg/domain/model"
)

// AnalyzeRepositories classifies repositories into metadata defect
// categories. Pure function over already-fetched data; no network calls.
// Category membership follows the heuristics on model.Repository, and a
// repository may land in several categories. Input order is preserved
// within each category.
func AnalyzeRepositories(repos []*model.Repository) *model.Analysis {
	var result model.Analysis

	for _, repo := range repos {
		if repo.MissingDescription() {
			result.MissingDescription = append(result.MissingDescription, repo)
		}
		if repo.MissingHomepage() {
			result.MissingHomepage = append(result.MissingHomepage, repo)
		}
		if repo.BrokenHomepage() {
			result.BrokenHomepage = append(result.BrokenHomepage, repo)
		}
	}

	return &result
}
