package usecase

import (
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra"
)

// DefaultPreferenceKey is the storage key of the theme preference.
const DefaultPreferenceKey types.PreferenceKey = "folio-theme"

type UseCase struct {
	clients *infra.Clients

	account       types.GitHubAccount
	feedURL       types.FeedURL
	projectFilter model.ProjectFilter
	priority      []types.Language
	preferenceKey types.PreferenceKey
	profile       *model.Profile
	tagger        *model.Tagger
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithGitHubAccount(account types.GitHubAccount) Option {
	return func(x *UseCase) {
		x.account = account
	}
}

func WithFeedURL(feedURL types.FeedURL) Option {
	return func(x *UseCase) {
		x.feedURL = feedURL
	}
}

func WithFeatured(names ...types.RepoName) Option {
	return func(x *UseCase) {
		x.projectFilter.Featured = names
	}
}

func WithBlocklist(names ...types.RepoName) Option {
	return func(x *UseCase) {
		x.projectFilter.Blocklist = names
	}
}

func WithPriorityLanguages(languages ...types.Language) Option {
	return func(x *UseCase) {
		x.priority = languages
	}
}

func WithPreferenceKey(key types.PreferenceKey) Option {
	return func(x *UseCase) {
		x.preferenceKey = key
	}
}

func WithProfile(profile *model.Profile) Option {
	return func(x *UseCase) {
		x.profile = profile
	}
}

func WithTagger(tagger *model.Tagger) Option {
	return func(x *UseCase) {
		x.tagger = tagger
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		projectFilter: model.ProjectFilter{Limit: model.MaxProjects},
		priority:      []types.Language{"Swift", "Kotlin"},
		preferenceKey: DefaultPreferenceKey,
		profile:       &model.Profile{},
		tagger:        model.DefaultTagger(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
