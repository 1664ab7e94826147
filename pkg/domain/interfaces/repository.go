package interfaces

import (
	"context"

	"github.com/rahulpawar166/folio/pkg/domain/types"
)

//go:generate moq -out ../mock/preference_repository_mock.go -pkg mock . PreferenceRepository

// PreferenceRepository is a key/value store for visitor preferences. GetPreference returns
// found=false without error when the key has never been written.
type PreferenceRepository interface {
	GetPreference(ctx context.Context, key types.PreferenceKey) (value string, found bool, err error)
	PutPreference(ctx context.Context, key types.PreferenceKey, value string) error
}
