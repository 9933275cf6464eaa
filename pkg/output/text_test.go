package output_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/output"
)

func TestText(t *testing.T) {
	rendered := output.Text(testRepos(), "octocat")

	gt.S(t, rendered).Contains("GitHub profile: https://github.com/octocat")
	gt.S(t, rendered).Contains("Repositories: 2 total, 1 public, 1 private")

	gt.S(t, rendered).Contains("hello\n")
	gt.S(t, rendered).Contains("Stars: 42 / Forks: 7")
	gt.S(t, rendered).Contains("Description: first repo")
	gt.S(t, rendered).Contains("Language: Go")
	gt.S(t, rendered).Contains("Homepage: https://octocat.dev")
	gt.S(t, rendered).Contains("URL: https://github.com/octocat/hello")
	gt.S(t, rendered).Contains("Created: 2020-01-02T03:04:05Z")

	// Placeholders for the repo with no description and no language.
	gt.S(t, rendered).Contains("Description: (no description)")
	gt.S(t, rendered).Contains("Language: (not detected)")
	gt.S(t, rendered).Contains("Private: yes")

	// Homepage line is omitted when absent: exactly one across both blocks.
	gt.V(t, strings.Count(rendered, "Homepage:")).Equal(1)
}

func TestTextEmptyListing(t *testing.T) {
	rendered := output.Text(nil, "ghost")
	gt.S(t, rendered).Contains("Repositories: 0 total, 0 public, 0 private")
}
