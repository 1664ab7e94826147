package cli

import (
	"context"

	"github.com/rahulpawar166/folio/pkg/cli/config"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/infra"
	"github.com/rahulpawar166/folio/pkg/infra/colorscheme"
	"github.com/rahulpawar166/folio/pkg/usecase"
)

// serveUseCase is buildUseCase for the HTTP API. The server's own terminal says nothing about a
// visitor, so the color-scheme signal is unavailable and the preference defaults to dark.
func serveUseCase(ctx context.Context, sources *config.Sources, preference *config.Preference, profile *config.Profile) (*usecase.UseCase, func(), error) {
	return buildUseCase(ctx, colorscheme.Fixed{}, sources, preference, profile)
}

// terminalUseCase is buildUseCase for commands that render into the invoking terminal.
func terminalUseCase(ctx context.Context, sources *config.Sources, preference *config.Preference, profile *config.Profile) (*usecase.UseCase, func(), error) {
	return buildUseCase(ctx, colorscheme.New(), sources, preference, profile)
}

// buildUseCase wires the external clients and the preference store. The returned function
// releases the store.
func buildUseCase(ctx context.Context, scheme interfaces.ColorScheme, sources *config.Sources, preference *config.Preference, profile *config.Profile) (*usecase.UseCase, func(), error) {
	ghClient, err := sources.NewGitHub()
	if err != nil {
		return nil, nil, err
	}
	feedClient, err := sources.NewFeedBridge()
	if err != nil {
		return nil, nil, err
	}
	p, err := profile.Load()
	if err != nil {
		return nil, nil, err
	}
	repo, closeRepo, err := preference.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithFeedBridge(feedClient),
		infra.WithColorScheme(scheme),
		infra.WithPreferenceRepository(repo),
	)

	options := append(sources.UseCaseOptions(),
		usecase.WithPreferenceKey(preference.Key()),
		usecase.WithProfile(p),
	)
	return usecase.New(clients, options...), closeRepo, nil
}

// buildPreferenceUseCase wires only what the theme commands need.
func buildPreferenceUseCase(ctx context.Context, preference *config.Preference) (*usecase.UseCase, func(), error) {
	repo, closeRepo, err := preference.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	clients := infra.New(
		infra.WithColorScheme(colorscheme.New()),
		infra.WithPreferenceRepository(repo),
	)
	return usecase.New(clients, usecase.WithPreferenceKey(preference.Key())), closeRepo, nil
}
