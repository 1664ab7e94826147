package model

import "github.com/rahulpawar166/folio/pkg/domain/types"

// DisplayPreference is the dark/light choice of the visitor.
type DisplayPreference struct {
	IsDark bool `json:"is_dark"`
}

// NewDisplayPreference maps a stored theme value; anything but "dark" is light.
func NewDisplayPreference(theme types.Theme) DisplayPreference {
	return DisplayPreference{IsDark: theme == types.ThemeDark}
}

// Theme returns the persisted form of the preference.
func (x DisplayPreference) Theme() types.Theme {
	if x.IsDark {
		return types.ThemeDark
	}
	return types.ThemeLight
}

// Toggle returns the opposite preference.
func (x DisplayPreference) Toggle() DisplayPreference {
	return DisplayPreference{IsDark: !x.IsDark}
}
