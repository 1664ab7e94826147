package config

import (
	"context"
	"log/slog"

	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/repository/firestore"
	"github.com/rahulpawar166/folio/pkg/repository/memory"
	"github.com/rahulpawar166/folio/pkg/repository/sqlite"
	"github.com/rahulpawar166/folio/pkg/usecase"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
	"github.com/rahulpawar166/folio/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

const DefaultPreferenceDB = "folio.db"

// Preference selects the store of the theme preference. Firestore wins when a project ID is set,
// then the SQLite file, then process memory.
type Preference struct {
	key        string
	dbPath     string
	projectID  string
	databaseID string
}

func (x *Preference) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "preference-key",
			Usage:       "Storage key of the theme preference",
			Category:    "Preference",
			Value:       usecase.DefaultPreferenceKey.String(),
			Sources:     cli.EnvVars("FOLIO_PREFERENCE_KEY"),
			Destination: &x.key,
		},
		&cli.StringFlag{
			Name:        "preference-db",
			Usage:       "SQLite file of the theme preference (empty keeps it in memory)",
			Category:    "Preference",
			Value:       DefaultPreferenceDB,
			Sources:     cli.EnvVars("FOLIO_PREFERENCE_DB"),
			Destination: &x.dbPath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID (optional)",
			Category:    "Preference",
			Sources:     cli.EnvVars("FOLIO_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Preference",
			Sources:     cli.EnvVars("FOLIO_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Preference) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("key", x.key),
		slog.Any("dbPath", x.dbPath),
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Preference) Key() types.PreferenceKey {
	return types.PreferenceKey(x.key)
}

// NewRepository opens the configured store. The returned function releases it.
func (x *Preference) NewRepository(ctx context.Context) (interfaces.PreferenceRepository, func(), error) {
	switch {
	case x.projectID != "":
		repo, err := firestore.New(ctx, x.projectID, x.databaseID)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Debug("preference store", "backend", "firestore")
		return repo, func() { safe.Close(repo) }, nil

	case x.dbPath != "":
		repo, err := sqlite.New(ctx, x.dbPath)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Debug("preference store", "backend", "sqlite", "path", x.dbPath)
		return repo, func() { safe.Close(repo) }, nil

	default:
		logging.From(ctx).Debug("preference store", "backend", "memory")
		return memory.New(), func() {}, nil
	}
}
