package types

type (
	PreferenceKey string
	Theme         string
	EmailAddress  string
)

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (x PreferenceKey) String() string { return string(x) }
func (x Theme) String() string         { return string(x) }

func (x Theme) Valid() bool {
	return x == ThemeDark || x == ThemeLight
}

func (x EmailAddress) String() string { return string(x) }
