package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

// LoadPreference returns the stored theme. Without a stored value the host color scheme is used,
// and dark when the host gives no signal. Nothing is written.
func (x *UseCase) LoadPreference(ctx context.Context) (model.DisplayPreference, error) {
	repo := x.clients.PreferenceRepository()
	if repo == nil {
		return model.DisplayPreference{}, goerr.Wrap(types.ErrInvalidOption, "preference repository is not configured")
	}

	value, found, err := repo.GetPreference(ctx, x.preferenceKey)
	if err != nil {
		return model.DisplayPreference{}, goerr.Wrap(err, "failed to load preference", goerr.V("key", x.preferenceKey))
	}
	if found {
		return model.NewDisplayPreference(types.Theme(value)), nil
	}

	if scheme := x.clients.ColorScheme(); scheme != nil {
		if dark, ok := scheme.PrefersDark(); ok {
			return model.DisplayPreference{IsDark: dark}, nil
		}
	}

	return model.DisplayPreference{IsDark: true}, nil
}

// SetPreference persists the theme. Setting the current value again is allowed.
func (x *UseCase) SetPreference(ctx context.Context, isDark bool) (model.DisplayPreference, error) {
	repo := x.clients.PreferenceRepository()
	if repo == nil {
		return model.DisplayPreference{}, goerr.Wrap(types.ErrInvalidOption, "preference repository is not configured")
	}

	pref := model.DisplayPreference{IsDark: isDark}
	if err := repo.PutPreference(ctx, x.preferenceKey, pref.Theme().String()); err != nil {
		return model.DisplayPreference{}, goerr.Wrap(err, "failed to save preference",
			goerr.V("key", x.preferenceKey),
			goerr.V("theme", pref.Theme()),
		)
	}

	logging.From(ctx).Info("Saved preference",
		slog.Any("key", x.preferenceKey),
		slog.Any("theme", pref.Theme()),
	)

	return pref, nil
}

func (x *UseCase) TogglePreference(ctx context.Context) (model.DisplayPreference, error) {
	current, err := x.LoadPreference(ctx)
	if err != nil {
		return model.DisplayPreference{}, err
	}
	return x.SetPreference(ctx, current.Toggle().IsDark)
}

// SetTheme is SetPreference for a theme name.
func (x *UseCase) SetTheme(ctx context.Context, theme types.Theme) (model.DisplayPreference, error) {
	if !theme.Valid() {
		return model.DisplayPreference{}, goerr.Wrap(types.ErrValidationFailed, "theme must be dark or light",
			goerr.V("theme", theme),
		)
	}
	return x.SetPreference(ctx, theme == types.ThemeDark)
}
