package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

// PerPage is the page size of the single listing request. Further pages are not fetched.
const PerPage = 100

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces https://api.github.com/, e.g. for GitHub Enterprise or tests.
func WithBaseURL(baseURL *url.URL) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// ParseBaseURL accepts a base URL with or without trailing slash.
func ParseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub base URL", goerr.V("url", raw))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub base URL must be absolute", goerr.V("url", raw))
	}
	return u, nil
}

func (x *Client) buildGithubClient() *github.Client {
	base := x.httpClient
	tr := base.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	httpClient := &http.Client{
		Transport:     &noStoreTransport{base: tr},
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
		Timeout:       base.Timeout,
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

// ListRepositories returns the first page of public repositories of account. A non-2xx response
// is reported as *types.FetchError.
func (x *Client) ListRepositories(ctx context.Context, account types.GitHubAccount) ([]*model.Repository, error) {
	client := x.buildGithubClient()

	opt := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: PerPage},
	}

	// https://docs.github.com/en/rest/repos/repos#list-repositories-for-a-user
	repos, resp, err := client.Repositories.List(ctx, account.String(), opt)
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return nil, goerr.Wrap(&types.FetchError{Reason: types.ReasonListing, Status: resp.StatusCode},
			"GitHub API returned error status",
			goerr.V("account", account),
			goerr.V("status", resp.StatusCode),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("account", account))
	}

	result := make([]*model.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toModel(repo))
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.Any("account", account),
		slog.Int("count", len(result)),
	)

	return result, nil
}

func toModel(repo *github.Repository) *model.Repository {
	r := &model.Repository{
		ID:          types.GitHubRepoID(repo.GetID()),
		Name:        types.RepoName(repo.GetName()),
		Description: repo.GetDescription(),
		Language:    types.Language(repo.GetLanguage()),
		StarCount:   repo.GetStargazersCount(),
		URL:         repo.GetHTMLURL(),
		IsFork:      repo.GetFork(),
	}
	if repo.PushedAt != nil {
		r.PushedAt = repo.PushedAt.Time
	}
	return r
}

// noStoreTransport asks every intermediate cache to bypass stored responses.
type noStoreTransport struct {
	base http.RoundTripper
}

func (x *noStoreTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Cache-Control", "no-store")
	return x.base.RoundTrip(req)
}
