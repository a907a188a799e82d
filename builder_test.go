package goConsole

import (
	"errors"
	"testing"

	"github.com/MrEthical07/goConsole/session"
)

func validBuilder() *Builder {
	cfg := defaultConfig()
	cfg.Gateway.BaseURL = "http://backend.local"

	return New().
		WithConfig(cfg).
		WithStorage(session.NewMemoryStorage()).
		WithRoutes(testRoutes()).
		WithMenu(testMenu())
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	b := validBuilder()
	b.config.Gateway.BaseURL = ""

	if _, err := b.Build(); err == nil {
		t.Fatal("build succeeded without a gateway base URL")
	}
}

func TestBuildRequiresStorage(t *testing.T) {
	b := validBuilder()
	b.storage = nil

	_, err := b.Build()
	if !errors.Is(err, ErrStorageRequired) {
		t.Fatalf("err = %v, want ErrStorageRequired", err)
	}
}

func TestBuildRequiresRoutes(t *testing.T) {
	b := validBuilder().WithRoutes(nil).WithMenu(nil)

	_, err := b.Build()
	if !errors.Is(err, ErrRoutesRequired) {
		t.Fatalf("err = %v, want ErrRoutesRequired", err)
	}
}

func TestBuildRejectsRoutedLoginPath(t *testing.T) {
	routes := append(testRoutes(), RouteRule{Path: "/login", Modes: []Mode{ModeWeb}})
	b := validBuilder().WithRoutes(routes)

	_, err := b.Build()
	if !errors.Is(err, ErrLoginPathRouted) {
		t.Fatalf("err = %v, want ErrLoginPathRouted", err)
	}
}

func TestBuildRequiresRoutedDefaultPathUnderDeny(t *testing.T) {
	cfg := defaultConfig()
	cfg.Gateway.BaseURL = "http://backend.local"
	cfg.Routes.DefaultPath = "/dashboard" // not in testRoutes

	b := validBuilder().WithConfig(cfg)

	_, err := b.Build()
	if !errors.Is(err, ErrDefaultPathUnrouted) {
		t.Fatalf("err = %v, want ErrDefaultPathUnrouted", err)
	}
}

func TestBuildAllowsUnroutedDefaultPathUnderAllow(t *testing.T) {
	cfg := defaultConfig()
	cfg.Gateway.BaseURL = "http://backend.local"
	cfg.Routes.DefaultPath = "/dashboard"
	cfg.Routes.UnknownPathPolicy = UnknownPathAllow

	console, err := validBuilder().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	console.Close()
}

func TestBuildRejectsMenuForUnroutedPath(t *testing.T) {
	menu := append(testMenu(), MenuEntry{Label: "Ghost", Path: "/ghost", AllowedModes: []Mode{ModeWeb}})
	b := validBuilder().WithMenu(menu)

	_, err := b.Build()
	if !errors.Is(err, ErrMenuRouteMismatch) {
		t.Fatalf("err = %v, want ErrMenuRouteMismatch", err)
	}
}

func TestBuildRejectsMenuWiderThanRoute(t *testing.T) {
	menu := testMenu()
	// Route rule for /users admits SUPERADMIN and WEB only.
	menu[3].AllowedModes = []Mode{ModeSuperAdmin, ModeWeb, ModeView}
	b := validBuilder().WithMenu(menu)

	_, err := b.Build()
	if !errors.Is(err, ErrMenuRouteMismatch) {
		t.Fatalf("err = %v, want ErrMenuRouteMismatch", err)
	}
}

func TestBuildAcceptsMenuNarrowerThanRoute(t *testing.T) {
	menu := testMenu()
	// Route rule for /customers admits SUPERADMIN, WEB and VIEW; hiding the
	// link from everyone but SUPERADMIN is a legitimate narrowing.
	menu[0].AllowedModes = []Mode{ModeSuperAdmin}

	console, err := validBuilder().WithMenu(menu).Build()
	if err != nil {
		t.Fatalf("narrower menu rejected: %v", err)
	}
	console.Close()
}

func TestBuilderSingleUse(t *testing.T) {
	b := validBuilder()

	console, err := b.Build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	console.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("second build on the same builder succeeded")
	}
}

func TestBuildExposesConfiguredPaths(t *testing.T) {
	console, err := validBuilder().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer console.Close()

	if got := console.LoginPath(); got != "/login" {
		t.Errorf("LoginPath = %q, want /login", got)
	}
	if got := console.DefaultPath(); got != "/customers" {
		t.Errorf("DefaultPath = %q, want /customers", got)
	}
	if got := len(console.Routes()); got != len(testRoutes()) {
		t.Errorf("Routes = %d rules, want %d", got, len(testRoutes()))
	}
}
