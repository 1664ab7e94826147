package infra

import (
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/infra/colorscheme"
)

type Clients struct {
	github      interfaces.GitHub
	feedBridge  interfaces.FeedBridge
	colorScheme interfaces.ColorScheme
	preference  interfaces.PreferenceRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		colorScheme: colorscheme.Fixed{},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) FeedBridge() interfaces.FeedBridge {
	return x.feedBridge
}
func (x *Clients) ColorScheme() interfaces.ColorScheme {
	return x.colorScheme
}
func (x *Clients) PreferenceRepository() interfaces.PreferenceRepository {
	return x.preference
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithFeedBridge(client interfaces.FeedBridge) Option {
	return func(x *Clients) {
		x.feedBridge = client
	}
}

func WithColorScheme(scheme interfaces.ColorScheme) Option {
	return func(x *Clients) {
		x.colorScheme = scheme
	}
}

func WithPreferenceRepository(repo interfaces.PreferenceRepository) Option {
	return func(x *Clients) {
		x.preference = repo
	}
}
