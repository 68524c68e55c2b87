// Package testutil provides fixtures for command tests: a temp workspace wired
// into viper and a scripted mock backend.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
)

// Workspace is a temporary case workspace registered as the active one
type Workspace struct {
	Dir string
	T   *testing.T
}

// NewWorkspace points the workspace config at a fresh temp directory for the
// duration of the test
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()

	dir := t.TempDir()
	prev := viper.GetString("workspace.dir")
	viper.Set("workspace.dir", dir)
	t.Cleanup(func() {
		viper.Set("workspace.dir", prev)
	})

	return &Workspace{Dir: dir, T: t}
}

// MockBackend starts an httptest server and registers it as the backend origin
// for the duration of the test
func MockBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	prev := viper.GetString("backend.base_url")
	viper.Set("backend.base_url", server.URL)
	t.Cleanup(func() {
		viper.Set("backend.base_url", prev)
		server.Close()
	})

	return server
}

// UnreachableBackend registers a backend handler that fails the test on any
// request. Used to prove local validation short-circuits before the network.
func UnreachableBackend(t *testing.T) {
	t.Helper()

	MockBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
		http.Error(w, "unexpected call", http.StatusTeapot)
	})
}
