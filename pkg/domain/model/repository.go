package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/repovet/pkg/domain/types"
)

// Repository represents one remote GitHub repository's observable metadata.
// Values are created fresh on each fetch and are read-only afterwards; a
// successful update never patches a Repository that was read earlier in the
// same run.
type Repository struct {
	ID          types.RepoID
	Owner       string
	Name        string
	Description string
	Homepage    string
	Language    string
	Stars       int
	Forks       int
	Private     bool

	// Feature flags are nil when the listing did not include them.
	HasIssues   *bool
	HasWiki     *bool
	HasProjects *bool

	HTMLURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
	PushedAt  time.Time

	// Authenticated records whether the repository was fetched with a
	// credential, i.e. whether private repositories could appear at all.
	Authenticated bool
}

// FullName returns the owner-qualified repository name, e.g. "octocat/hello".
func (x *Repository) FullName() string {
	return x.Owner + "/" + x.Name
}

// URL returns the canonical web URL, preferring what the server reported.
func (x *Repository) URL() string {
	if x.HTMLURL != "" {
		return x.HTMLURL
	}
	return "https://github.com/" + x.FullName()
}

// MissingDescription reports whether the description is absent or blank.
func (x *Repository) MissingDescription() bool {
	return strings.TrimSpace(x.Description) == ""
}

// MissingHomepage reports whether the homepage is absent or blank.
func (x *Repository) MissingHomepage() bool {
	return strings.TrimSpace(x.Homepage) == ""
}

// BrokenHomepage reports whether a present homepage looks malformed. This is
// a deliberate heuristic, not URL validation: anything starting with
// "http://", "https://" or "www." passes the prefix check, and any value
// containing "localhost" or "127.0.0.1" is treated as broken. Do not replace
// this with a stricter parser; callers depend on the exact classification.
func (x *Repository) BrokenHomepage() bool {
	if x.MissingHomepage() {
		return false
	}

	hp := x.Homepage
	if !strings.HasPrefix(hp, "http://") && !strings.HasPrefix(hp, "https://") && !strings.HasPrefix(hp, "www.") {
		return true
	}
	if strings.Contains(hp, "localhost") || strings.Contains(hp, "127.0.0.1") {
		return true
	}

	return false
}
