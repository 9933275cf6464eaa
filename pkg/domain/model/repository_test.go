package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repovet/pkg/domain/model"
)

func TestRepositoryMissingDescription(t *testing.T) {
	t.Run("absent description is missing", func(t *testing.T) {
		repo := &model.Repository{Owner: "octocat", Name: "hello"}
		gt.True(t, repo.MissingDescription())
	})

	t.Run("whitespace-only description is missing", func(t *testing.T) {
		repo := &model.Repository{Owner: "octocat", Name: "hello", Description: "  \t "}
		gt.True(t, repo.MissingDescription())
	})

	t.Run("real description is not missing", func(t *testing.T) {
		repo := &model.Repository{Owner: "octocat", Name: "hello", Description: "a tool"}
		gt.False(t, repo.MissingDescription())
	})
}

func TestRepositoryBrokenHomepage(t *testing.T) {
	broken := func(homepage string) bool {
		repo := &model.Repository{Owner: "octocat", Name: "hello", Homepage: homepage}
		return repo.BrokenHomepage()
	}

	t.Run("https homepage passes", func(t *testing.T) {
		gt.False(t, broken("https://x.com"))
	})

	t.Run("http homepage passes", func(t *testing.T) {
		gt.False(t, broken("http://example.com"))
	})

	t.Run("www prefix passes without further validation", func(t *testing.T) {
		// Deliberate leniency of the heuristic, not an oversight to fix.
		gt.False(t, broken("www.x.com"))
	})

	t.Run("unknown scheme is broken", func(t *testing.T) {
		gt.True(t, broken("ftp://x.com"))
	})

	t.Run("localhost is broken even with valid scheme", func(t *testing.T) {
		gt.True(t, broken("http://localhost:3000"))
	})

	t.Run("loopback address is broken", func(t *testing.T) {
		gt.True(t, broken("https://127.0.0.1:8080"))
	})

	t.Run("empty homepage is missing, not broken", func(t *testing.T) {
		gt.False(t, broken(""))
	})
}

func TestRepositoryURL(t *testing.T) {
	t.Run("prefer server-reported URL", func(t *testing.T) {
		repo := &model.Repository{Owner: "octocat", Name: "hello", HTMLURL: "https://ghes.example.com/octocat/hello"}
		gt.V(t, repo.URL()).Equal("https://ghes.example.com/octocat/hello")
	})

	t.Run("fall back to canonical github.com URL", func(t *testing.T) {
		repo := &model.Repository{Owner: "octocat", Name: "hello"}
		gt.V(t, repo.URL()).Equal("https://github.com/octocat/hello")
	})
}

func TestRepositoryPatchValidate(t *testing.T) {
	t.Run("empty patch fails validation", func(t *testing.T) {
		patch := &model.RepositoryPatch{}
		gt.True(t, patch.IsEmpty())
		gt.Error(t, patch.Validate())
	})

	t.Run("patch with one field passes", func(t *testing.T) {
		desc := "new description"
		patch := &model.RepositoryPatch{Description: &desc}
		gt.False(t, patch.IsEmpty())
		gt.NoError(t, patch.Validate())
	})

	t.Run("pointer to zero value still counts as present", func(t *testing.T) {
		private := false
		patch := &model.RepositoryPatch{Private: &private}
		gt.False(t, patch.IsEmpty())
		gt.NoError(t, patch.Validate())
	})
}

func TestUpdateRequestValidate(t *testing.T) {
	desc := "d"

	t.Run("valid request passes", func(t *testing.T) {
		req := &model.UpdateRequest{
			Owner: "octocat",
			Repo:  "hello",
			Patch: model.RepositoryPatch{Description: &desc},
		}
		gt.NoError(t, req.Validate())
	})

	t.Run("missing owner fails", func(t *testing.T) {
		req := &model.UpdateRequest{
			Repo:  "hello",
			Patch: model.RepositoryPatch{Description: &desc},
		}
		gt.Error(t, req.Validate())
	})

	t.Run("missing repo fails", func(t *testing.T) {
		req := &model.UpdateRequest{
			Owner: "octocat",
			Patch: model.RepositoryPatch{Description: &desc},
		}
		gt.Error(t, req.Validate())
	})
}

func TestSubjectValidate(t *testing.T) {
	t.Run("anonymous subject requires username", func(t *testing.T) {
		subject := model.Subject{}
		gt.Error(t, subject.Validate())
	})

	t.Run("anonymous subject with username passes", func(t *testing.T) {
		subject := model.Subject{Username: "octocat"}
		gt.NoError(t, subject.Validate())
	})

	t.Run("authenticated subject needs no username", func(t *testing.T) {
		subject := model.Subject{Authenticated: true}
		gt.NoError(t, subject.Validate())
	})
}
