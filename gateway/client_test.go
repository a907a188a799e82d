package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) Token() (string, bool) { return s.token, s.ok }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource, hooks Hooks) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, tokens, hooks)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestAnonymousRequestCarriesNoAuthorization(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}), staticTokens{}, Hooks{})

	if err := client.GetJSON(context.Background(), "/weblogin/", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestAuthenticatedRequestCarriesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}), staticTokens{token: "tok-123", ok: true}, Hooks{})

	if err := client.GetJSON(context.Background(), "/clients/", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected an X-Request-ID header")
	}
}

func TestUnauthorizedFiresHookOnceAndReturnsSentinel(t *testing.T) {
	hookCalls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), staticTokens{token: "stale", ok: true}, Hooks{
		OnUnauthenticated: func() { hookCalls++ },
	})

	err := client.GetJSON(context.Background(), "/clients/", nil, nil)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if hookCalls != 1 {
		t.Fatalf("expected exactly one hook invocation, got %d", hookCalls)
	}
}

func TestServerErrorPassesThroughAsStatusError(t *testing.T) {
	hookCalls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("backend down"))
	}), staticTokens{token: "tok", ok: true}, Hooks{
		OnUnauthenticated: func() { hookCalls++ },
	})

	err := client.GetJSON(context.Background(), "/reports/", nil, nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "backend down") {
		t.Fatalf("expected backend body, got %q", statusErr.Body)
	}
	if hookCalls != 0 {
		t.Fatal("rejection hook must not fire on non-401 statuses")
	}
}

func TestPostFormEncodesCredentials(t *testing.T) {
	var gotContentType, gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotBody = r.PostForm.Encode()
		w.Write([]byte(`{"access_token":"tok-1"}`))
	}), staticTokens{}, Hooks{})

	var out struct {
		AccessToken string `json:"access_token"`
	}
	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "secret")
	if err := client.PostForm(context.Background(), "/token", form, &out); err != nil {
		t.Fatalf("post form: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if !strings.Contains(gotBody, "username=admin") || !strings.Contains(gotBody, "password=secret") {
		t.Fatalf("unexpected form body %q", gotBody)
	}
	if out.AccessToken != "tok-1" {
		t.Fatalf("unexpected decode %+v", out)
	}
}

func TestUploadMultipartCarriesFieldsAndFile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("versionName"); got != "v2" {
			t.Errorf("unexpected versionName %q", got)
		}
		file, header, err := r.FormFile("zipFile")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "model.zip" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		w.Write([]byte(`{}`))
	}), staticTokens{token: "tok", ok: true}, Hooks{})

	err := client.UploadMultipart(context.Background(), "/upload_version/",
		map[string]string{"versionName": "v2"},
		"zipFile", "model.zip", strings.NewReader("zip-bytes"), nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
}

func TestGetJSONAppendsQuery(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}), staticTokens{}, Hooks{})

	query := url.Values{}
	query.Set("all", "true")
	if err := client.GetJSON(context.Background(), "/clients_with_locations/", query, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotQuery.Get("all") != "true" {
		t.Fatalf("query not forwarded: %v", gotQuery)
	}
}

func TestHooksObserveTraffic(t *testing.T) {
	requests, failures := 0, 0
	var observed time.Duration
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}), staticTokens{}, Hooks{
		OnRequest:      func() { requests++ },
		OnFailure:      func() { failures++ },
		ObserveLatency: func(d time.Duration) { observed = d },
	})

	_ = client.Delete(context.Background(), "/clients/9")
	if requests != 1 || failures != 1 {
		t.Fatalf("expected 1 request / 1 failure, got %d / %d", requests, failures)
	}
	if observed <= 0 {
		t.Fatal("expected a positive latency observation")
	}
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}, nil, Hooks{}); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}
