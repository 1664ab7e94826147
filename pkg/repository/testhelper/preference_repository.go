package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// TestAll runs all test cases for PreferenceRepository
func TestAll(t *testing.T, repo interfaces.PreferenceRepository) {
	t.Run("GetMissing", func(t *testing.T) {
		TestGetMissing(t, repo)
	})
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("KeysAreIndependent", func(t *testing.T) {
		TestKeysAreIndependent(t, repo)
	})
	t.Run("EmptyKey", func(t *testing.T) {
		TestEmptyKey(t, repo)
	})
	t.Run("ConcurrentPut", func(t *testing.T) {
		TestConcurrentPut(t, repo)
	})
}

func newKey() types.PreferenceKey {
	return types.PreferenceKey(fmt.Sprintf("theme-%s", uuid.New().String()[:8]))
}

func TestGetMissing(t *testing.T, repo interfaces.PreferenceRepository) {
	value, found, err := repo.GetPreference(context.Background(), newKey())
	gt.NoError(t, err)
	gt.False(t, found)
	gt.V(t, value).Equal("")
}

func TestPutAndGet(t *testing.T, repo interfaces.PreferenceRepository) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, repo.PutPreference(ctx, key, types.ThemeDark.String()))

	value, found, err := repo.GetPreference(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, value).Equal("dark")
}

func TestOverwrite(t *testing.T, repo interfaces.PreferenceRepository) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, repo.PutPreference(ctx, key, "dark"))
	gt.NoError(t, repo.PutPreference(ctx, key, "light"))
	gt.NoError(t, repo.PutPreference(ctx, key, "light"))

	value, found, err := repo.GetPreference(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, value).Equal("light")
}

func TestKeysAreIndependent(t *testing.T, repo interfaces.PreferenceRepository) {
	ctx := context.Background()
	key1, key2 := newKey(), newKey()

	gt.NoError(t, repo.PutPreference(ctx, key1, "dark"))
	gt.NoError(t, repo.PutPreference(ctx, key2, "light"))

	v1, _, err := repo.GetPreference(ctx, key1)
	gt.NoError(t, err)
	v2, _, err := repo.GetPreference(ctx, key2)
	gt.NoError(t, err)

	gt.V(t, v1).Equal("dark")
	gt.V(t, v2).Equal("light")
}

func TestEmptyKey(t *testing.T, repo interfaces.PreferenceRepository) {
	gt.Error(t, repo.PutPreference(context.Background(), "", "dark"))
}

func TestConcurrentPut(t *testing.T, repo interfaces.PreferenceRepository) {
	ctx := context.Background()
	key := newKey()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			theme := types.ThemeDark
			if i%2 == 0 {
				theme = types.ThemeLight
			}
			if err := repo.PutPreference(ctx, key, theme.String()); err != nil {
				t.Errorf("failed to put preference: %v", err)
			}
		}()
	}
	wg.Wait()

	value, found, err := repo.GetPreference(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.True(t, types.Theme(value).Valid())
}
