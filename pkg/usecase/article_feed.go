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

// FetchArticles fetches the syndication feed in feed order.
func (x *UseCase) FetchArticles(ctx context.Context) ([]*model.Article, error) {
	if x.clients.FeedBridge() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feed bridge is not configured")
	}
	if x.feedURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feed URL is not configured")
	}

	articles, err := x.clients.FeedBridge().FetchFeed(ctx, x.feedURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch articles", goerr.V("feed", x.feedURL))
	}

	logging.From(ctx).Info("Fetched articles",
		slog.Any("feed", x.feedURL),
		slog.Int("count", len(articles)),
	)

	return articles, nil
}

// BuildArticles keeps at most MaxArticles and prepares cards. An empty input is replaced by the
// demo articles.
func (x *UseCase) BuildArticles(articles []*model.Article) []*model.ArticleCard {
	if len(articles) == 0 {
		articles = DemoArticles()
	}

	assembled := model.AssembleArticles(articles, model.MaxArticles)
	cards := make([]*model.ArticleCard, 0, len(assembled))
	for _, article := range assembled {
		cards = append(cards, model.NewArticleCard(article))
	}
	return cards
}

func articleNotice(err error) string {
	return fmt.Sprintf("Medium fetch issue: %s. Using a lightweight fallback.", fetchMessage(err, "Unable to fetch Medium articles"))
}
