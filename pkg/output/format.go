// Package output renders repository collections into text, JSON, and CSV
// encodings, plus the analysis report. All render functions are pure; file
// writing stays with the caller.
package output

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
)

// FormatForFilename maps a destination filename to an output encoding by
// extension, case-insensitively. Anything that is not .json or .csv,
// including a missing extension, renders as text.
func FormatForFilename(path string) types.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return types.FormatJSON
	case ".csv":
		return types.FormatCSV
	default:
		return types.FormatText
	}
}

// Render dispatches to the encoding-specific renderer.
func Render(repos []*model.Repository, username string, format types.Format) (string, error) {
	switch format {
	case types.FormatJSON:
		return JSON(repos, username)
	case types.FormatCSV:
		return CSV(repos, username), nil
	default:
		return Text(repos, username), nil
	}
}

func profileURL(username string) string {
	return "https://github.com/" + username
}

type counts struct {
	Total   int
	Public  int
	Private int
}

func countRepos(repos []*model.Repository) counts {
	c := counts{Total: len(repos)}
	for _, repo := range repos {
		if repo.Private {
			c.Private++
		} else {
			c.Public++
		}
	}
	return c
}
