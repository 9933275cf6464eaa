package output

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/repovet/pkg/domain/model"
)

// Report renders the analysis result as text: a summary count block, then
// one section per defect category listing each affected repository.
func Report(analysis *model.Analysis, username string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Repository metadata analysis: %s\n", profileURL(username))
	fmt.Fprintf(&b, "Missing description: %d\n", len(analysis.MissingDescription))
	fmt.Fprintf(&b, "Missing homepage:    %d\n", len(analysis.MissingHomepage))
	fmt.Fprintf(&b, "Broken homepage:     %d\n", len(analysis.BrokenHomepage))

	if analysis.Clean() {
		b.WriteString("\nNo metadata defects found.\n")
		return b.String()
	}

	writeSection(&b, "Repositories without description", analysis.MissingDescription, func(r *model.Repository) string {
		return fmt.Sprintf("language: %s, stars: %d", orPlaceholder(r.Language, noLanguage), r.Stars)
	})
	writeSection(&b, "Repositories without homepage", analysis.MissingHomepage, func(r *model.Repository) string {
		return fmt.Sprintf("description: %s", orPlaceholder(r.Description, noDescription))
	})
	writeSection(&b, "Repositories with broken homepage", analysis.BrokenHomepage, func(r *model.Repository) string {
		return fmt.Sprintf("homepage: %s", r.Homepage)
	})

	return b.String()
}

func writeSection(b *strings.Builder, title string, repos []*model.Repository, detail func(*model.Repository) string) {
	if len(repos) == 0 {
		return
	}

	fmt.Fprintf(b, "\n[%s]\n", title)
	for _, repo := range repos {
		fmt.Fprintf(b, "- %s (%s)\n    %s\n", repo.Name, repo.URL(), detail(repo))
	}
}
