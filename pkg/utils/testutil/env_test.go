package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("FOLIO_TEST_ENV", "value")
		gt.V(t, testutil.GetEnvOrSkip(t, "FOLIO_TEST_ENV")).Equal("value")
	})

	var reached []string
	t.Run("skips when unset", func(t *testing.T) {
		testutil.GetEnvOrSkip(t, "FOLIO_TEST_ENV_UNSET")
		reached = append(reached, "unset")
	})
	t.Run("skips when blank", func(t *testing.T) {
		t.Setenv("FOLIO_TEST_ENV_BLANK", "  ")
		testutil.GetEnvOrSkip(t, "FOLIO_TEST_ENV_BLANK")
		reached = append(reached, "blank")
	})
	gt.V(t, len(reached)).Equal(0)
}
