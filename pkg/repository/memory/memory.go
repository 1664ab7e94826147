package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/repository"
)

type preferenceRepository struct {
	mu     sync.RWMutex
	values map[types.PreferenceKey]string
}

// New creates a new in-memory repository
func New() interfaces.PreferenceRepository {
	return &preferenceRepository{
		values: make(map[types.PreferenceKey]string),
	}
}

func (r *preferenceRepository) GetPreference(ctx context.Context, key types.PreferenceKey) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	return value, ok, nil
}

func (r *preferenceRepository) PutPreference(ctx context.Context, key types.PreferenceKey, value string) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "preference key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
