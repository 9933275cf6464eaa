package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/repovet/pkg/domain/model"
)

const (
	noDescription = "(no description)"
	noLanguage    = "(not detected)"
)

// Text renders the human-readable listing: a summary header followed by one
// block per repository.
func Text(repos []*model.Repository, username string) string {
	var b strings.Builder
	c := countRepos(repos)

	fmt.Fprintf(&b, "GitHub profile: %s\n", profileURL(username))
	fmt.Fprintf(&b, "Repositories: %d total, %d public, %d private\n", c.Total, c.Public, c.Private)

	for _, repo := range repos {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", repo.Name)
		fmt.Fprintf(&b, "  Stars: %d / Forks: %d\n", repo.Stars, repo.Forks)
		fmt.Fprintf(&b, "  Description: %s\n", orPlaceholder(repo.Description, noDescription))
		fmt.Fprintf(&b, "  Language: %s\n", orPlaceholder(repo.Language, noLanguage))
		fmt.Fprintf(&b, "  Private: %s\n", yesNo(repo.Private))
		if repo.Homepage != "" {
			fmt.Fprintf(&b, "  Homepage: %s\n", repo.Homepage)
		}
		fmt.Fprintf(&b, "  URL: %s\n", repo.URL())
		fmt.Fprintf(&b, "  Created: %s / Updated: %s / Pushed: %s\n",
			timestamp(repo.CreatedAt), timestamp(repo.UpdatedAt), timestamp(repo.PushedAt))
	}

	return b.String()
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
