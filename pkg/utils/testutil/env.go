package testutil

import (
	"os"
	"strings"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable, or skips the test when it is unset
// or blank. Integration tests against real GitHub and Firestore are gated this way.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}
