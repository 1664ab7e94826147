package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/rahulpawar166/folio/pkg/cli/config"
	"github.com/rahulpawar166/folio/pkg/controller/server"
	"github.com/rahulpawar166/folio/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		fetchTimeout time.Duration

		sources    config.Sources
		preference config.Preference
		profile    config.Profile
		sentry     config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FOLIO_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "fetch-timeout",
			Usage:       "Upper bound of the external fetches per portfolio request (0 means no bound)",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("FOLIO_FETCH_TIMEOUT"),
			Destination: &fetchTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the portfolio as a JSON API",
		Flags: slice.Flatten(
			serveFlags,
			sources.Flags(),
			preference.Flags(),
			profile.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("FetchTimeout", fetchTimeout),
				slog.Any("Sources", &sources),
				slog.Any("Preference", &preference),
				slog.Any("Profile", &profile),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, closeRepo, err := serveUseCase(ctx, &sources, &preference, &profile)
			if err != nil {
				return err
			}
			defer closeRepo()

			s := server.New(uc, server.WithFetchTimeout(fetchTimeout))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      fetchTimeout + 30*time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
