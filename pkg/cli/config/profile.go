package config

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed default_profile.yaml
var defaultProfile []byte

// Profile loads the static profile document. Without --profile the embedded one is used.
type Profile struct {
	path string
}

func (x *Profile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Profile YAML file (name, links, experience, skills)",
			Category:    "Profile",
			Sources:     cli.EnvVars("FOLIO_PROFILE"),
			Destination: &x.path,
		},
	}
}

func (x *Profile) LogValue() slog.Value {
	path := x.path
	if path == "" {
		path = "(embedded)"
	}
	return slog.GroupValue(slog.Any("path", path))
}

func (x *Profile) Load() (*model.Profile, error) {
	data := defaultProfile
	if x.path != "" {
		raw, err := os.ReadFile(x.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read profile", goerr.V("path", x.path))
		}
		data = raw
	}

	return ParseProfile(data)
}

// ParseProfile decodes a profile document. Name and contact_email are required.
func ParseProfile(data []byte) (*model.Profile, error) {
	var profile model.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse profile", goerr.V("error", err.Error()))
	}

	if profile.Name == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "profile name is required")
	}
	if profile.ContactEmail == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "profile contact_email is required")
	}

	return &profile, nil
}
