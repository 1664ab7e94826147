package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/repository"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionPreference = "preference"

// Repository stores preferences as documents of the "preference" collection.
type Repository struct {
	client *firestore.Client
}

type preferenceDoc struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// New creates a new Firestore-based repository
func New(ctx context.Context, projectID, databaseID string) (*Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{
		client: client,
	}, nil
}

// ToFirestoreID validates a preference key as a document ID. Firestore document IDs cannot
// contain "/" and cannot be "." or "..".
func ToFirestoreID(key types.PreferenceKey) (string, error) {
	id := string(key)
	if id == "" || id == "." || id == ".." || strings.Contains(id, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "invalid preference key",
			goerr.V("key", key),
		)
	}
	return id, nil
}

var _ interfaces.PreferenceRepository = (*Repository)(nil)

// Close releases the Firestore client.
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) GetPreference(ctx context.Context, key types.PreferenceKey) (string, bool, error) {
	docID, err := ToFirestoreID(key)
	if err != nil {
		return "", false, err
	}

	doc, err := r.client.Collection(collectionPreference).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, goerr.Wrap(err, "failed to get preference",
			goerr.V("key", key),
		)
	}

	var data preferenceDoc
	if err := doc.DataTo(&data); err != nil {
		return "", false, goerr.Wrap(err, "failed to decode preference",
			goerr.V("key", key),
		)
	}

	return data.Value, true, nil
}

func (r *Repository) PutPreference(ctx context.Context, key types.PreferenceKey, value string) error {
	docID, err := ToFirestoreID(key)
	if err != nil {
		return err
	}

	data := preferenceDoc{
		Value:     value,
		UpdatedAt: logging.CtxTime(ctx).UTC(),
	}
	if _, err := r.client.Collection(collectionPreference).Doc(docID).Set(ctx, data); err != nil {
		return goerr.Wrap(err, "failed to put preference",
			goerr.V("key", key),
		)
	}

	return nil
}
