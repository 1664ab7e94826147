package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/cli/config"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func (x *CLI) themeCommand() *cli.Command {
	var preference config.Preference

	run := func(f func(ctx context.Context, uc *usecase.UseCase, c *cli.Command) (model.DisplayPreference, error)) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := buildPreferenceUseCase(ctx, &preference)
			if err != nil {
				return err
			}
			defer closeRepo()

			pref, err := f(ctx, uc, c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(x.out, pref.Theme())
			return err
		}
	}

	return &cli.Command{
		Name:  "theme",
		Usage: "Show or change the saved dark/light preference",
		Flags: preference.Flags(),
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Print the effective theme",
				Action: run(func(ctx context.Context, uc *usecase.UseCase, c *cli.Command) (model.DisplayPreference, error) {
					return uc.LoadPreference(ctx)
				}),
			},
			{
				Name:  "toggle",
				Usage: "Flip the theme and save it",
				Action: run(func(ctx context.Context, uc *usecase.UseCase, c *cli.Command) (model.DisplayPreference, error) {
					return uc.TogglePreference(ctx)
				}),
			},
			{
				Name:      "set",
				Usage:     "Save the theme",
				ArgsUsage: "<dark|light>",
				Action: run(func(ctx context.Context, uc *usecase.UseCase, c *cli.Command) (model.DisplayPreference, error) {
					if c.Args().Len() != 1 {
						return model.DisplayPreference{}, goerr.Wrap(types.ErrInvalidOption, "theme set takes exactly one argument")
					}
					return uc.SetTheme(ctx, types.Theme(c.Args().First()))
				}),
			},
		},
	}
}
