package usecase

import (
	"context"
	"log/slog"

	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/utils/errutil"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// LoadPortfolio fetches repositories and articles concurrently and never fails: a failed source
// yields its demo list and a notice. A failing preference store falls back to the dark theme.
func (x *UseCase) LoadPortfolio(ctx context.Context) *model.Portfolio {
	var (
		repos      []*model.Repository
		repoErr    error
		articles   []*model.Article
		articleErr error
	)

	var eg errgroup.Group
	eg.Go(func() error {
		repos, repoErr = x.FetchRepositories(ctx)
		return nil
	})
	eg.Go(func() error {
		articles, articleErr = x.FetchArticles(ctx)
		return nil
	})
	_ = eg.Wait()

	portfolio := &model.Portfolio{
		Profile:  x.profile,
		Projects: x.BuildProjects(repos),
		Articles: x.BuildArticles(articles),
	}

	if repoErr != nil {
		errutil.HandleError(ctx, "failed to fetch repositories", repoErr)
		portfolio.Notices.Projects = repositoryNotice(repoErr)
	}
	if articleErr != nil {
		errutil.HandleError(ctx, "failed to fetch articles", articleErr)
		portfolio.Notices.Articles = articleNotice(articleErr)
	}

	pref, err := x.LoadPreference(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to load preference", err)
		pref = model.DisplayPreference{IsDark: true}
	}
	portfolio.Preference = pref

	logging.From(ctx).Info("Loaded portfolio",
		slog.Int("projects", len(portfolio.Projects)),
		slog.Int("articles", len(portfolio.Articles)),
		slog.Bool("degraded", !portfolio.Notices.Empty()),
	)

	return portfolio
}
