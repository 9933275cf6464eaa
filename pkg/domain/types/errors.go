package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrBadCredential    = goerr.New("bad credential")
	ErrGitHubAPI        = goerr.New("GitHub API error")
)
