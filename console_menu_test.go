package goConsole

import (
	"context"
	"testing"
)

func menuLabels(entries []MenuEntry) []string {
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
	}
	return labels
}

func TestVisibleMenuSignedOut(t *testing.T) {
	console, _ := newTestConsole(t, newStubBackend("VIEW"), nil)

	if entries := console.VisibleMenu(); entries != nil {
		t.Fatalf("signed-out menu = %v, want nil", menuLabels(entries))
	}
}

func TestVisibleMenuFiltersByMode(t *testing.T) {
	cases := []struct {
		mode Mode
		want []string
	}{
		{ModeSuperAdmin, []string{"Customers", "Models", "Reports", "Users"}},
		{ModeWeb, []string{"Customers", "Models", "Reports", "Users"}},
		{ModeView, []string{"Customers", "Reports"}},
		{ModeMobile, nil},
	}

	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			console, storage := newTestConsole(t, newStubBackend("VIEW"), nil)
			seedSession(t, storage, tc.mode)

			got := menuLabels(console.VisibleMenu())
			if len(got) != len(tc.want) {
				t.Fatalf("visible = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("visible = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestVisibleMenuKeepsDeclarationOrder(t *testing.T) {
	console, storage := newTestConsole(t, newStubBackend("VIEW"), nil)
	seedSession(t, storage, ModeView)

	got := menuLabels(console.VisibleMenu())
	want := []string{"Customers", "Reports"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestVisibleMenuAfterLogout(t *testing.T) {
	console, _ := newTestConsole(t, newStubBackend("WEB"), nil)

	if _, err := console.Login(context.Background(), "viewer", testPassword); err != nil {
		t.Fatalf("login: %v", err)
	}
	if console.VisibleMenu() == nil {
		t.Fatal("logged-in WEB session sees no menu")
	}

	if err := console.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if entries := console.VisibleMenu(); entries != nil {
		t.Fatalf("menu visible after logout: %v", menuLabels(entries))
	}
}
