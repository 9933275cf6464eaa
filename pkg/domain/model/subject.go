package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/types"
)

// Subject identifies whose repositories a fetch targets. When Authenticated
// is set, the listing covers the principal behind the credential (including
// private repositories) and Username is informational; otherwise only the
// public repositories of Username are visible.
type Subject struct {
	Username      string
	Authenticated bool
}

func (x *Subject) Validate() error {
	if !x.Authenticated && x.Username == "" {
		return goerr.Wrap(types.ErrValidationFailed, "username is required for anonymous access")
	}
	return nil
}

func (x Subject) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", x.Username),
		slog.Bool("authenticated", x.Authenticated),
	)
}
