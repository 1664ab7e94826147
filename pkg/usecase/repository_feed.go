package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

// FetchRepositories lists the account's repositories without forks, ranked by priority language and
// recency.
func (x *UseCase) FetchRepositories(ctx context.Context) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.account == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub account is not configured")
	}

	repos, err := x.clients.GitHub().ListRepositories(ctx, x.account)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch repositories", goerr.V("account", x.account))
	}

	ranked := model.ExcludeForks(repos)
	model.RankRepositories(ranked, x.priority)

	logging.From(ctx).Info("Fetched repositories",
		slog.Any("account", x.account),
		slog.Int("total", len(repos)),
		slog.Int("non_fork", len(ranked)),
	)

	return ranked, nil
}

// BuildProjects applies the featured and blocklist rules and decorates repositories for display.
// An empty input is replaced by the demo repositories.
func (x *UseCase) BuildProjects(repos []*model.Repository) []*model.Project {
	if len(repos) == 0 {
		repos = DemoRepositories()
	}

	assembled := model.AssembleProjects(repos, x.projectFilter)
	projects := make([]*model.Project, 0, len(assembled))
	for _, repo := range assembled {
		projects = append(projects, model.NewProject(repo, x.tagger))
	}
	return projects
}

func repositoryNotice(err error) string {
	return fmt.Sprintf("GitHub fetch issue: %s. Showing a subset if available.", fetchMessage(err, "Unable to fetch repositories"))
}

// fetchMessage returns the short description shown to the visitor. Details stay in the log.
func fetchMessage(err error, fallback string) string {
	if fetchErr, ok := types.AsFetchError(err); ok {
		return fetchErr.Error()
	}
	return fallback
}
