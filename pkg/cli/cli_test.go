package cli_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := cli.New(cli.WithOutput(&buf)).Run(append([]string{"folio", "--log-level", "error"}, args...))
	return buf.String(), err
}

func TestContactCommand(t *testing.T) {
	out, err := run(t, "contact",
		"--first", "Jane",
		"--last", "Doe",
		"--email", "jane@example.com",
		"--subject", "Hello Rahul",
		"--message", "Nice work",
	)
	gt.NoError(t, err)
	gt.True(t, strings.HasPrefix(out, "mailto:rahulpawar166@gmail.com?subject=Hello%20Rahul&body="))
}

func TestContactCommandMissingField(t *testing.T) {
	out, err := run(t, "contact", "--first", "Jane", "--last", "Doe", "--email", "jane@example.com", "--subject", "Hi")
	gt.Error(t, err)
	gt.V(t, out).Equal("")
}

func TestThemeCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "folio.db")

	out, err := run(t, "theme", "--preference-db", db, "set", "light")
	gt.NoError(t, err)
	gt.V(t, out).Equal("light\n")

	out, err = run(t, "theme", "--preference-db", db, "get")
	gt.NoError(t, err)
	gt.V(t, out).Equal("light\n")

	out, err = run(t, "theme", "--preference-db", db, "toggle")
	gt.NoError(t, err)
	gt.V(t, out).Equal("dark\n")

	out, err = run(t, "theme", "--preference-db", db, "toggle")
	gt.NoError(t, err)
	gt.V(t, out).Equal("light\n")
}

func TestThemeCommandRejectsUnknownTheme(t *testing.T) {
	db := filepath.Join(t.TempDir(), "folio.db")

	_, err := run(t, "theme", "--preference-db", db, "set", "sepia")
	gt.Error(t, err)

	_, err = run(t, "theme", "--preference-db", db, "set")
	gt.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")

	mux := http.NewServeMux()
	mux.HandleFunc("/users/rahulpawar166/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"RestSync","language":"Swift","fork":false,"stargazers_count":3,"pushed_at":"2025-06-01T10:00:00Z","html_url":"https://github.com/rahulpawar166/RestSync"}]`))
	})
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	out, err := run(t, "show",
		"--github-base-url", srv.URL,
		"--feed-bridge-url", srv.URL+"/feed",
		"--preference-db", "",
	)
	gt.NoError(t, err)

	gt.True(t, strings.Contains(out, "Rahul Pawar"))
	gt.True(t, strings.Contains(out, "RestSync"))
	gt.True(t, strings.Contains(out, "Medium fetch issue: feed error: 503. Using a lightweight fallback."))
	gt.True(t, strings.Contains(out, "Theme: dark"))
}
