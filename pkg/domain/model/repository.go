package model

import (
	"slices"
	"time"

	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// MaxProjects is the number of repositories shown in the project grid.
const MaxProjects = 9

// Repository is a source code repository of the portfolio owner. Description and Language are
// empty when GitHub reports null, PushedAt is zero when the repository was never pushed.
type Repository struct {
	ID          types.GitHubRepoID `json:"id"`
	Name        types.RepoName     `json:"name"`
	Description string             `json:"description,omitempty"`
	Language    types.Language     `json:"language,omitempty"`
	StarCount   int                `json:"star_count"`
	PushedAt    time.Time          `json:"pushed_at"`
	URL         string             `json:"url"`
	IsFork      bool               `json:"is_fork"`
}

// ExcludeForks returns repositories that are not forks, keeping their order.
func ExcludeForks(repos []*Repository) []*Repository {
	var result []*Repository
	for _, repo := range repos {
		if !repo.IsFork {
			result = append(result, repo)
		}
	}
	return result
}

// RankRepositories sorts repos in place. Repositories written in one of priority come first, then
// the most recently pushed. The sort is stable.
func RankRepositories(repos []*Repository, priority []types.Language) {
	rank := func(lang types.Language) int {
		if slices.Contains(priority, lang) {
			return 0
		}
		return 1
	}

	slices.SortStableFunc(repos, func(a, b *Repository) int {
		if ra, rb := rank(a.Language), rank(b.Language); ra != rb {
			return ra - rb
		}
		return b.PushedAt.Compare(a.PushedAt)
	})
}

// Project is a repository prepared for display.
type Project struct {
	*Repository
	Tags    []string `json:"tags"`
	Updated string   `json:"updated,omitempty"`
}

// ProjectFilter holds the presentation rules for the project grid.
type ProjectFilter struct {
	Featured  []types.RepoName
	Blocklist []types.RepoName
	Limit     int
}

// AssembleProjects drops blocklisted repositories, moves featured ones to the front in the order of
// filter.Featured and truncates the list to filter.Limit. repos is not modified.
func AssembleProjects(repos []*Repository, filter ProjectFilter) []*Repository {
	result := make([]*Repository, 0, len(repos))
	for _, repo := range repos {
		if !slices.Contains(filter.Blocklist, repo.Name) {
			result = append(result, repo)
		}
	}

	featuredRank := func(name types.RepoName) int {
		if idx := slices.Index(filter.Featured, name); idx >= 0 {
			return idx
		}
		return len(filter.Featured)
	}
	slices.SortStableFunc(result, func(a, b *Repository) int {
		return featuredRank(a.Name) - featuredRank(b.Name)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result
}

// NewProject decorates repo with inferred tags and a display date.
func NewProject(repo *Repository, tagger *Tagger) *Project {
	return &Project{
		Repository: repo,
		Tags:       tagger.Infer(repo),
		Updated:    DisplayDate(repo.PushedAt),
	}
}
