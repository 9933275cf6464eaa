// Package ghclient implements the GitHub REST API client on top of
// google/go-github. List methods paginate transparently (page size 100) and
// return the concatenated result in server order; the caller never sees a
// partial listing on failure.
package ghclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repovet/pkg/domain/interfaces"
	"github.com/m-mizutani/repovet/pkg/domain/model"
	"github.com/m-mizutani/repovet/pkg/domain/types"
	"github.com/m-mizutani/repovet/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const perPage = 100

type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*config)

type config struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL points the client at a GitHub Enterprise Server or a test
// server. The URL must carry a trailing slash to be usable as a base.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client. When a token is set,
// the oauth2 transport wraps this client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// New creates a GitHub API client. An empty token yields an anonymous client
// that can only see public data.
func New(ctx context.Context, token types.GitHubToken, options ...Option) (*Client, error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	httpClient := cfg.httpClient
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, src)
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid API base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

func (x *Client) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := x.gh.Users.Get(ctx, "")
	if err != nil {
		return "", wrapAPIError(err, "failed to get authenticated user")
	}
	return user.GetLogin(), nil
}

func (x *Client) ListOwnRepos(ctx context.Context, sortHint types.SortKey) ([]*model.Repository, error) {
	opts := &github.RepositoryListOptions{
		Sort:        serverSort(sortHint),
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	repos, err := x.listRepos(ctx, "", opts)
	if err != nil {
		return nil, err
	}
	for _, repo := range repos {
		repo.Authenticated = true
	}
	return repos, nil
}

func (x *Client) ListUserRepos(ctx context.Context, username string, sortHint types.SortKey) ([]*model.Repository, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "username is empty")
	}

	opts := &github.RepositoryListOptions{
		Visibility:  "public",
		Sort:        serverSort(sortHint),
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	return x.listRepos(ctx, username, opts)
}

func (x *Client) listRepos(ctx context.Context, username string, opts *github.RepositoryListOptions) ([]*model.Repository, error) {
	var all []*model.Repository

	for {
		page, resp, err := x.gh.Repositories.List(ctx, username, opts)
		if err != nil {
			// Partial pages already fetched are discarded.
			return nil, wrapAPIError(err, "failed to list repositories",
				goerr.V("username", username),
				goerr.V("page", opts.Page),
			)
		}

		for _, repo := range page {
			all = append(all, toModel(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.String("username", username),
		slog.Int("count", len(all)),
	)

	return all, nil
}

func (x *Client) GetRepo(ctx context.Context, owner, repo string) (*model.Repository, error) {
	r, _, err := x.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, wrapAPIError(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return toModel(r), nil
}

func (x *Client) UpdateRepo(ctx context.Context, owner, repo string, patch *model.RepositoryPatch) (*model.Repository, error) {
	// go-github omits nil pointer fields from the request body, so only the
	// present keys of the patch reach the server.
	edit := &github.Repository{
		Description: patch.Description,
		Homepage:    patch.Homepage,
		Private:     patch.Private,
		HasIssues:   patch.HasIssues,
		HasWiki:     patch.HasWiki,
		HasProjects: patch.HasProjects,
	}

	updated, _, err := x.gh.Repositories.Edit(ctx, owner, repo, edit)
	if err != nil {
		return nil, wrapAPIError(err, "failed to update repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return toModel(updated), nil
}

// serverSort maps a sort key to the server-side sort hint. The server cannot
// sort by stars, and "name" is served by full_name; client-side sorting is
// authoritative either way.
func serverSort(key types.SortKey) string {
	switch key {
	case types.SortCreated, types.SortUpdated, types.SortPushed, types.SortFullName:
		return string(key)
	case types.SortName:
		return string(types.SortFullName)
	default:
		return ""
	}
}

func toModel(r *github.Repository) *model.Repository {
	return &model.Repository{
		ID:          types.RepoID(r.GetID()),
		Owner:       r.GetOwner().GetLogin(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Homepage:    r.GetHomepage(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Private:     r.GetPrivate(),
		HasIssues:   r.HasIssues,
		HasWiki:     r.HasWiki,
		HasProjects: r.HasProjects,
		HTMLURL:     r.GetHTMLURL(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		PushedAt:    r.GetPushedAt().Time,
	}
}

func wrapAPIError(err error, msg string, options ...goerr.Option) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		options = append(options, goerr.V("status", errResp.Response.StatusCode))
		if errResp.Response.StatusCode == http.StatusUnauthorized {
			return goerr.Wrap(types.ErrBadCredential, msg, options...)
		}
	}
	options = append(options, goerr.V("cause", err.Error()))
	return goerr.Wrap(types.ErrGitHubAPI, msg, options...)
}
