package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra/feed"
	"github.com/rahulpawar166/folio/pkg/infra/github"
	"github.com/rahulpawar166/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	DefaultGitHubAccount = "rahulpawar166"
	DefaultFeedURL       = "https://medium.com/feed/@rahulpawar166"
)

// Sources configures where repositories and articles are fetched from and how they are ordered.
type Sources struct {
	githubAccount     string
	githubBaseURL     string
	feedURL           string
	feedBridgeURL     string
	featured          []string
	blocklist         []string
	priorityLanguages []string
}

func (x *Sources) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-account",
			Usage:       "GitHub account whose public repositories are listed",
			Category:    "Sources",
			Value:       DefaultGitHubAccount,
			Sources:     cli.EnvVars("FOLIO_GITHUB_ACCOUNT"),
			Destination: &x.githubAccount,
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL (optional)",
			Category:    "Sources",
			Sources:     cli.EnvVars("FOLIO_GITHUB_BASE_URL"),
			Destination: &x.githubBaseURL,
		},
		&cli.StringFlag{
			Name:        "feed-url",
			Usage:       "RSS feed of articles",
			Category:    "Sources",
			Value:       DefaultFeedURL,
			Sources:     cli.EnvVars("FOLIO_FEED_URL"),
			Destination: &x.feedURL,
		},
		&cli.StringFlag{
			Name:        "feed-bridge-url",
			Usage:       "RSS to JSON bridge endpoint",
			Category:    "Sources",
			Value:       feed.DefaultBridgeURL.String(),
			Sources:     cli.EnvVars("FOLIO_FEED_BRIDGE_URL"),
			Destination: &x.feedBridgeURL,
		},
		&cli.StringSliceFlag{
			Name:        "featured",
			Usage:       "Repository names shown first, in order",
			Category:    "Sources",
			Value:       []string{"RestSync", "iSEN"},
			Sources:     cli.EnvVars("FOLIO_FEATURED"),
			Destination: &x.featured,
		},
		&cli.StringSliceFlag{
			Name:     "blocklist",
			Usage:    "Repository names never shown",
			Category: "Sources",
			Value: []string{
				"Eulerity",
				"Swift XCTest Demo Project",
				"Swift-XCTest-Demo-Project",
				"rahul-portfolio",
				"Rahul-Portfolio",
			},
			Sources:     cli.EnvVars("FOLIO_BLOCKLIST"),
			Destination: &x.blocklist,
		},
		&cli.StringSliceFlag{
			Name:        "priority-language",
			Usage:       "Languages ranked before all others",
			Category:    "Sources",
			Value:       []string{"Swift", "Kotlin"},
			Sources:     cli.EnvVars("FOLIO_PRIORITY_LANGUAGE"),
			Destination: &x.priorityLanguages,
		},
	}
}

func (x *Sources) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHubAccount", x.githubAccount),
		slog.Any("GitHubBaseURL", x.githubBaseURL),
		slog.Any("FeedURL", x.feedURL),
		slog.Any("FeedBridgeURL", x.feedBridgeURL),
		slog.Any("Featured", x.featured),
		slog.Any("Blocklist", x.blocklist),
		slog.Any("PriorityLanguages", x.priorityLanguages),
	)
}

func (x *Sources) NewGitHub() (*github.Client, error) {
	if x.githubBaseURL == "" {
		return github.New(), nil
	}

	baseURL, err := github.ParseBaseURL(x.githubBaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", x.githubBaseURL))
	}
	return github.New(github.WithBaseURL(baseURL)), nil
}

func (x *Sources) NewFeedBridge() (*feed.Client, error) {
	return feed.New(types.FeedBridgeURL(x.feedBridgeURL))
}

// UseCaseOptions converts the source settings into use case options.
func (x *Sources) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithGitHubAccount(types.GitHubAccount(x.githubAccount)),
		usecase.WithFeedURL(types.FeedURL(x.feedURL)),
		usecase.WithFeatured(toRepoNames(x.featured)...),
		usecase.WithBlocklist(toRepoNames(x.blocklist)...),
		usecase.WithPriorityLanguages(toLanguages(x.priorityLanguages)...),
	}
}

func toRepoNames(names []string) []types.RepoName {
	resp := make([]types.RepoName, len(names))
	for i, name := range names {
		resp[i] = types.RepoName(name)
	}
	return resp
}

func toLanguages(languages []string) []types.Language {
	resp := make([]types.Language, len(languages))
	for i, lang := range languages {
		resp[i] = types.Language(lang)
	}
	return resp
}
