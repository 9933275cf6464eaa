package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/repovet/pkg/domain/model"
)

var csvHeader = []string{
	"name", "owner", "description", "homepage", "language",
	"stars", "forks", "private", "url",
	"created_at", "updated_at", "pushed_at",
}

// CSV renders the listing as comma-separated values: two '#' comment lines
// (profile and counts), a header row, then one row per repository. Every
// field is quoted unconditionally so embedded commas and quotes round-trip
// through a standard CSV reader configured with '#' comments.
func CSV(repos []*model.Repository, username string) string {
	var b strings.Builder
	c := countRepos(repos)

	fmt.Fprintf(&b, "# profile: %s\n", profileURL(username))
	fmt.Fprintf(&b, "# repositories: %d total, %d public, %d private\n", c.Total, c.Public, c.Private)

	writeRow(&b, csvHeader)
	for _, repo := range repos {
		writeRow(&b, []string{
			repo.Name,
			repo.Owner,
			repo.Description,
			repo.Homepage,
			repo.Language,
			strconv.Itoa(repo.Stars),
			strconv.Itoa(repo.Forks),
			yesNo(repo.Private),
			repo.URL(),
			timestamp(repo.CreatedAt),
			timestamp(repo.UpdatedAt),
			timestamp(repo.PushedAt),
		})
	}

	return b.String()
}

// writeRow quotes every field. encoding/csv only quotes when required, so
// the row is assembled by hand to keep the always-quoted contract.
func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
