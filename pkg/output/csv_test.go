package output_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/output"
)

func TestCSVRoundTrip(t *testing.T) {
	repos := []*model.Repository{
		{
			Owner:       "octocat",
			Name:        "tricky",
			Description: `has "quotes", commas, and
a newline`,
			Homepage: "https://x.com/?a=1,2",
			Stars:    3,
		},
		{Owner: "octocat", Name: "plain", Private: true},
	}

	rendered := output.CSV(repos, "octocat")

	reader := csv.NewReader(strings.NewReader(rendered))
	reader.Comment = '#'
	records := gt.R1(reader.ReadAll()).NoError(t)

	// Header row plus one row per repository.
	gt.V(t, len(records)).Equal(3)
	gt.V(t, records[0][0]).Equal("name")

	gt.V(t, records[1][0]).Equal("tricky")
	gt.S(t, records[1][2]).Contains(`has "quotes", commas,`)
	gt.V(t, records[1][3]).Equal("https://x.com/?a=1,2")
	gt.V(t, records[1][5]).Equal("3")

	gt.V(t, records[2][0]).Equal("plain")
	gt.V(t, records[2][7]).Equal("yes")
}

func TestCSVEveryFieldQuoted(t *testing.T) {
	rendered := output.CSV([]*model.Repository{{Owner: "o", Name: "r"}}, "o")

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	// Two comment lines, then quoted rows.
	gt.True(t, strings.HasPrefix(lines[0], "# profile: https://github.com/o"))
	gt.True(t, strings.HasPrefix(lines[1], "# repositories: 1 total"))
	for _, line := range lines[2:] {
		gt.True(t, strings.HasPrefix(line, `"`))
		gt.True(t, strings.HasSuffix(line, `"`))
		// No field values contain commas here, so every separator must be a
		// quote-to-quote boundary: 12 fields, 11 separators.
		gt.V(t, strings.Count(line, `","`)).Equal(11)
	}
}

func TestCSVHeaderCounts(t *testing.T) {
	repos := []*model.Repository{
		{Owner: "o", Name: "pub"},
		{Owner: "o", Name: "priv", Private: true},
	}
	rendered := output.CSV(repos, "o")
	gt.S(t, rendered).Contains("# repositories: 2 total, 1 public, 1 private")
}
