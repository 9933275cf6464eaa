package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/types"
)

// RepositoryPatch is a sparse metadata update. Only non-nil fields are sent
// to the server; nil means "leave unchanged".
type RepositoryPatch struct {
	Description *string
	Homepage    *string
	Private     *bool
	HasIssues   *bool
	HasWiki     *bool
	HasProjects *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (x *RepositoryPatch) IsEmpty() bool {
	return x.Description == nil &&
		x.Homepage == nil &&
		x.Private == nil &&
		x.HasIssues == nil &&
		x.HasWiki == nil &&
		x.HasProjects == nil
}

func (x *RepositoryPatch) Validate() error {
	if x.IsEmpty() {
		return goerr.Wrap(types.ErrValidationFailed, "patch has no fields to update")
	}
	return nil
}

// UpdateRequest names one repository and the patch to apply to it.
type UpdateRequest struct {
	Owner string
	Repo  string
	Patch RepositoryPatch
}

func (x *UpdateRequest) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is empty")
	}
	return x.Patch.Validate()
}

// UpdateOutcome is the per-item record of a batch update, in submission
// order. A failed item never aborts the batch; it is recorded here instead.
type UpdateOutcome struct {
	Owner   string
	Repo    string
	Success bool
	Error   string
}
