package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	GitHubToken string
	RepoID      int64
	RequestID   string
	SortKey     string
	Format      string
)

// Sort keys accepted by the sorter. Unknown keys fall back to SortUpdated.
const (
	SortUpdated  SortKey = "updated"
	SortCreated  SortKey = "created"
	SortPushed   SortKey = "pushed"
	SortStars    SortKey = "stars"
	SortName     SortKey = "name"
	SortFullName SortKey = "full_name"
)

// Output encodings for rendered repository listings.
const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// ParseSortKey normalizes a user-supplied sort key. Unrecognized values
// resolve to SortUpdated, matching the server's default ordering.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortUpdated, SortCreated, SortPushed, SortStars, SortName, SortFullName:
		return key
	default:
		return SortUpdated
	}
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
