package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/rahulpawar166/folio/pkg/cli/config"
	"github.com/rahulpawar166/folio/pkg/controller/terminal"
	"github.com/urfave/cli/v3"
)

func (x *CLI) showCommand() *cli.Command {
	var (
		width   int
		timeout time.Duration

		sources    config.Sources
		preference config.Preference
		profile    config.Profile
	)
	showFlags := []cli.Flag{
		&cli.IntFlag{
			Name:        "width",
			Usage:       "Card width in columns",
			Value:       terminal.DefaultWidth,
			Sources:     cli.EnvVars("FOLIO_WIDTH"),
			Destination: &width,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Upper bound of the external fetches (0 means no bound)",
			Sources:     cli.EnvVars("FOLIO_TIMEOUT"),
			Destination: &timeout,
		},
	}

	return &cli.Command{
		Name:  "show",
		Usage: "Render the portfolio in the terminal using the saved theme",
		Flags: slice.Flatten(
			showFlags,
			sources.Flags(),
			preference.Flags(),
			profile.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := terminalUseCase(ctx, &sources, &preference, &profile)
			if err != nil {
				return err
			}
			defer closeRepo()

			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			portfolio := uc.LoadPortfolio(ctx)
			return terminal.New(terminal.WithWidth(width)).Render(x.out, portfolio)
		},
	}
}
