package memory_test

import (
	"testing"

	"github.com/rahulpawar166/folio/pkg/repository/memory"
	"github.com/rahulpawar166/folio/pkg/repository/testhelper"
)

func TestMemoryPreferenceRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
