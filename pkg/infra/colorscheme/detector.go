package colorscheme

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
)

// Detector reads the dark/light signal of the host terminal. The COLORFGBG variable wins; otherwise
// the terminal background is queried when stdout is a terminal.
type Detector struct {
	getenv            func(string) string
	isTerminal        func() bool
	hasDarkBackground func() bool
}

var _ interfaces.ColorScheme = (*Detector)(nil)

type Option func(*Detector)

func WithGetenv(f func(string) string) Option {
	return func(x *Detector) {
		x.getenv = f
	}
}

func WithTerminal(isTerminal func() bool, hasDarkBackground func() bool) Option {
	return func(x *Detector) {
		x.isTerminal = isTerminal
		x.hasDarkBackground = hasDarkBackground
	}
}

func New(options ...Option) *Detector {
	d := &Detector{
		getenv: os.Getenv,
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

func (x *Detector) PrefersDark() (bool, bool) {
	if dark, ok := parseColorFGBG(x.getenv("COLORFGBG")); ok {
		return dark, true
	}

	if x.isTerminal() {
		return x.hasDarkBackground(), true
	}

	return false, false
}

// parseColorFGBG reads "fg;bg" or "fg;default;bg". Background colors 0-6 and 8 are dark.
func parseColorFGBG(v string) (bool, bool) {
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}

// Fixed is a ColorScheme that always reports the same signal.
type Fixed struct {
	Dark      bool
	Available bool
}

var _ interfaces.ColorScheme = Fixed{}

func (x Fixed) PrefersDark() (bool, bool) {
	return x.Dark, x.Available
}
