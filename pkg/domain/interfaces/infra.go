package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub FeedBridge ColorScheme

import (
	"context"

	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// GitHub lists public repositories of an account.
type GitHub interface {
	ListRepositories(ctx context.Context, account types.GitHubAccount) ([]*model.Repository, error)
}

// FeedBridge fetches a syndication feed through a feed-to-JSON converter.
type FeedBridge interface {
	FetchFeed(ctx context.Context, feedURL types.FeedURL) ([]*model.Article, error)
}

// ColorScheme reports the host preference for dark appearance. ok is false when the host gives
// no signal.
type ColorScheme interface {
	PrefersDark() (dark bool, ok bool)
}
