package output

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/model"
)

// Document is the top-level JSON rendering. Field names are canonical, not
// the API's wire names (stars, not stargazers_count), and the struct fixes
// the key order so output is reproducible.
type Document struct {
	Profile      string   `json:"profile"`
	Username     string   `json:"username"`
	TotalCount   int      `json:"total_count"`
	PublicCount  int      `json:"public_count"`
	PrivateCount int      `json:"private_count"`
	Repositories []Record `json:"repositories"`
}

// Record is one repository in the JSON rendering.
type Record struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Private     bool   `json:"private"`
	URL         string `json:"url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	PushedAt    string `json:"pushed_at"`
}

// JSON renders the pretty-printed JSON listing.
func JSON(repos []*model.Repository, username string) (string, error) {
	c := countRepos(repos)
	doc := Document{
		Profile:      profileURL(username),
		Username:     username,
		TotalCount:   c.Total,
		PublicCount:  c.Public,
		PrivateCount: c.Private,
		Repositories: make([]Record, 0, len(repos)),
	}

	for _, repo := range repos {
		doc.Repositories = append(doc.Repositories, Record{
			Name:        repo.Name,
			Owner:       repo.Owner,
			Description: repo.Description,
			Homepage:    repo.Homepage,
			Language:    repo.Language,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Private:     repo.Private,
			URL:         repo.URL(),
			CreatedAt:   timestamp(repo.CreatedAt),
			UpdatedAt:   timestamp(repo.UpdatedAt),
			PushedAt:    timestamp(repo.PushedAt),
		})
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal repository listing")
	}

	return string(raw) + "\n", nil
}
