package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/mock"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra"
	"github.com/rahulpawar166/folio/pkg/infra/colorscheme"
	"github.com/rahulpawar166/folio/pkg/repository/memory"
	"github.com/rahulpawar166/folio/pkg/usecase"
)

func TestLoadPreference(t *testing.T) {
	ctx := context.Background()

	t.Run("stored value wins over host signal", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.PutPreference(ctx, usecase.DefaultPreferenceKey, "light"))

		uc := usecase.New(infra.New(
			infra.WithPreferenceRepository(repo),
			infra.WithColorScheme(colorscheme.Fixed{Dark: true, Available: true}),
		))
		pref, err := uc.LoadPreference(ctx)
		gt.NoError(t, err)
		gt.False(t, pref.IsDark)
	})

	t.Run("host signal when nothing is stored", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithPreferenceRepository(repo),
			infra.WithColorScheme(colorscheme.Fixed{Dark: false, Available: true}),
		))
		pref, err := uc.LoadPreference(ctx)
		gt.NoError(t, err)
		gt.False(t, pref.IsDark)

		// loading does not persist
		_, found, err := repo.GetPreference(ctx, usecase.DefaultPreferenceKey)
		gt.NoError(t, err)
		gt.False(t, found)
	})

	t.Run("dark when host gives no signal", func(t *testing.T) {
		uc := usecase.New(infra.New(
			infra.WithPreferenceRepository(memory.New()),
			infra.WithColorScheme(colorscheme.Fixed{}),
		))
		pref, err := uc.LoadPreference(ctx)
		gt.NoError(t, err)
		gt.True(t, pref.IsDark)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := &mock.PreferenceRepositoryMock{
			GetPreferenceFunc: func(ctx context.Context, key types.PreferenceKey) (string, bool, error) {
				return "", false, errors.New("disk failure")
			},
		}
		uc := usecase.New(infra.New(infra.WithPreferenceRepository(repo)))
		_, err := uc.LoadPreference(ctx)
		gt.Error(t, err)
	})
}

func TestSetPreference(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithPreferenceRepository(repo)),
		usecase.WithPreferenceKey("custom-key"),
	)

	pref, err := uc.SetPreference(ctx, false)
	gt.NoError(t, err)
	gt.False(t, pref.IsDark)

	value, found, err := repo.GetPreference(ctx, "custom-key")
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, value).Equal("light")

	// idempotent
	_, err = uc.SetPreference(ctx, false)
	gt.NoError(t, err)
	value, _, err = repo.GetPreference(ctx, "custom-key")
	gt.NoError(t, err)
	gt.V(t, value).Equal("light")
}

func TestTogglePreference(t *testing.T) {
	ctx := context.Background()

	for _, initial := range []string{"dark", "light"} {
		t.Run("toggle twice restores "+initial, func(t *testing.T) {
			repo := memory.New()
			gt.NoError(t, repo.PutPreference(ctx, usecase.DefaultPreferenceKey, initial))
			uc := usecase.New(infra.New(infra.WithPreferenceRepository(repo)))

			first, err := uc.TogglePreference(ctx)
			gt.NoError(t, err)
			gt.V(t, first.Theme().String()).NotEqual(initial)

			stored, _, err := repo.GetPreference(ctx, usecase.DefaultPreferenceKey)
			gt.NoError(t, err)
			gt.True(t, types.Theme(stored).Valid())

			_, err = uc.TogglePreference(ctx)
			gt.NoError(t, err)

			stored, _, err = repo.GetPreference(ctx, usecase.DefaultPreferenceKey)
			gt.NoError(t, err)
			gt.V(t, stored).Equal(initial)
		})
	}

	t.Run("toggle without stored value flips the default", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithPreferenceRepository(repo)))

		pref, err := uc.TogglePreference(ctx)
		gt.NoError(t, err)
		gt.False(t, pref.IsDark)

		stored, found, err := repo.GetPreference(ctx, usecase.DefaultPreferenceKey)
		gt.NoError(t, err)
		gt.True(t, found)
		gt.V(t, stored).Equal("light")
	})

	t.Run("write failure", func(t *testing.T) {
		repo := &mock.PreferenceRepositoryMock{
			GetPreferenceFunc: func(ctx context.Context, key types.PreferenceKey) (string, bool, error) {
				return "dark", true, nil
			},
			PutPreferenceFunc: func(ctx context.Context, key types.PreferenceKey, value string) error {
				return errors.New("read-only")
			},
		}
		uc := usecase.New(infra.New(infra.WithPreferenceRepository(repo)))
		_, err := uc.TogglePreference(ctx)
		gt.Error(t, err)
		gt.V(t, repo.PutPreferenceCalls()[0].Value).Equal("light")
	})
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New(infra.WithPreferenceRepository(memory.New())))

	pref, err := uc.SetTheme(ctx, types.ThemeDark)
	gt.NoError(t, err)
	gt.True(t, pref.IsDark)

	_, err = uc.SetTheme(ctx, "blue")
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}
