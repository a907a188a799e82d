package goConsole

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MrEthical07/goConsole/session"
)

const (
	testToken    = "test-access-token"
	testPassword = "correct-horse"
)

func testRoutes() []RouteRule {
	return []RouteRule{
		{Path: "/customers", Modes: []Mode{ModeSuperAdmin, ModeWeb, ModeView}},
		{Path: "/modelmgrs", Modes: []Mode{ModeSuperAdmin, ModeWeb}},
		{Path: "/reports", Modes: []Mode{ModeSuperAdmin, ModeWeb, ModeView}},
		{Path: "/users", Modes: []Mode{ModeSuperAdmin, ModeWeb}},
	}
}

func testMenu() []MenuEntry {
	routes := testRoutes()
	return []MenuEntry{
		{Label: "Customers", Icon: "people", Path: "/customers", AllowedModes: routes[0].Modes},
		{Label: "Models", Icon: "model", Path: "/modelmgrs", AllowedModes: routes[1].Modes},
		{Label: "Reports", Icon: "chart", Path: "/reports", AllowedModes: routes[2].Modes},
		{Label: "Users", Icon: "admin", Path: "/users", AllowedModes: routes[3].Modes},
	}
}

// stubBackend implements the token and verification endpoints the console
// talks to during login, plus a trivial resource endpoint for rejection tests.
type stubBackend struct {
	mux        *http.ServeMux
	mode       string
	expired    atomic.Bool
	failVerify atomic.Bool
}

func newStubBackend(mode string) *stubBackend {
	b := &stubBackend{mux: http.NewServeMux(), mode: mode}

	b.mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("password") != testPassword {
			http.Error(w, `{"detail":"bad credentials"}`, http.StatusUnauthorized)
			return
		}
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"bearer"}`, testToken)
	})
	b.mux.HandleFunc("/weblogin/", func(w http.ResponseWriter, r *http.Request) {
		if b.failVerify.Load() || !b.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprintf(w, `{"username":"viewer","name":"Test Viewer","mode":%q}`, b.mode)
	})
	b.mux.HandleFunc("/clients/", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[{"id":1,"name":"Acme","enabled":true}]`)
	})

	return b
}

func (b *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mux.ServeHTTP(w, r)
}

func (b *stubBackend) authorized(r *http.Request) bool {
	return !b.expired.Load() && r.Header.Get("Authorization") == "Bearer "+testToken
}

// newTestConsole wires a console against handler. configure may be nil; the
// returned storage is the one behind the console's session store so tests can
// seed or inspect sessions directly.
func newTestConsole(t *testing.T, handler http.Handler, configure func(*Builder)) (*Console, *session.MemoryStorage) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := defaultConfig()
	cfg.Gateway.BaseURL = server.URL

	storage := session.NewMemoryStorage()

	builder := New().
		WithConfig(cfg).
		WithStorage(storage).
		WithRoutes(testRoutes()).
		WithMenu(testMenu())
	if configure != nil {
		configure(builder)
	}

	console, err := builder.Build()
	if err != nil {
		t.Fatalf("build console: %v", err)
	}
	t.Cleanup(console.Close)

	return console, storage
}

func seedSession(t *testing.T, storage *session.MemoryStorage, mode Mode) {
	t.Helper()

	store := session.NewStore(storage)
	if err := store.Set(testToken, Identity{Username: "seeded", Name: "Seeded User", Mode: mode}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}
