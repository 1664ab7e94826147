package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stdout", func(t *testing.T) {
		err := logging.Configure("json", "info", "stdout")
		gt.NoError(t, err)
		// Successful configuration is validated by no error
		// Actual log format testing requires output interception
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "stdout")
		gt.NoError(t, err)
		// Successful configuration is validated by no error
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stdout")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	// Test that Default() returns a functional logger
	logger := logging.Default()
	logger.Info("test message", "key", "value")
	// If this doesn't panic, the logger is functional
}

func TestConfigureMasksEmailAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	gt.NoError(t, logging.Configure("json", "info", path))
	t.Cleanup(func() { _ = logging.Configure("text", "info", "stdout") })

	logging.Default().Info("contact", slog.Any("from", types.EmailAddress("jane@example.com")))

	data := gt.R1(os.ReadFile(path)).NoError(t)
	gt.False(t, strings.Contains(string(data), "jane@example.com"))
	gt.True(t, strings.Contains(string(data), "contact"))
}

func TestConfigureTraceLevel(t *testing.T) {
	t.Cleanup(func() { _ = logging.Configure("text", "info", "stdout") })
	gt.NoError(t, logging.Configure("json", "trace", "stderr"))
	gt.True(t, logging.Default().Enabled(t.Context(), logging.LevelTrace))

	gt.NoError(t, logging.Configure("json", "debug", "stderr"))
	gt.False(t, logging.Default().Enabled(t.Context(), logging.LevelTrace))
}
