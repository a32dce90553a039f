package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jobdeck/jobdeck/pkg/domain"
	"github.com/jobdeck/jobdeck/pkg/session"
)

func testSession(t *testing.T) *session.Store {
	t.Helper()
	s := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	return s
}

func authedSession(t *testing.T, access, refresh string) *session.Store {
	t.Helper()
	s := testSession(t)
	if err := s.SetAuthenticated(access, refresh, domain.User{ID: 1, Username: "alice"}); err != nil {
		t.Fatalf("SetAuthenticated() error: %v", err)
	}
	return s
}

func TestAuthenticatedGetAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.Paginated[domain.Job]{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "access-tok", "refresh-tok"))
	if _, err := c.ListJobs(context.Background(), 1, "", "", "", ""); err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}
	if gotAuth != "Bearer access-tok" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer access-tok")
	}
}

func TestPublicPathSkipsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"access": "new", "refresh": "ref",
		})
	}))
	defer srv.Close()

	// Even with a token stored, login must go out unauthenticated.
	c := New(srv.URL, authedSession(t, "stale-tok", "ref"))
	if _, err := c.Login(context.Background(), "alice", "secret", false); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q on public path, want empty", gotAuth)
	}
}

func TestRefreshAndRetryOnce(t *testing.T) {
	jobCalls := 0
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/jobs/":
			jobCalls++
			if r.Header.Get("Authorization") != "Bearer fresh-tok" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"}) //nolint:errcheck
				return
			}
			json.NewEncoder(w).Encode(domain.Paginated[domain.Job]{ //nolint:errcheck
				Count:   1,
				Results: []domain.Job{{ID: 1, Title: "Go Engineer"}},
			})
		case "/api/token/refresh/":
			refreshCalls++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
			if body["refresh"] != "refresh-tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh-tok"}) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sess := authedSession(t, "expired-tok", "refresh-tok")
	c := New(srv.URL, sess)

	jobs, err := c.ListJobs(context.Background(), 1, "", "", "", "")
	if err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}
	if len(jobs.Results) != 1 || jobs.Results[0].Title != "Go Engineer" {
		t.Errorf("unexpected results: %+v", jobs.Results)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh called %d times, want 1", refreshCalls)
	}
	if jobCalls != 2 {
		t.Errorf("jobs endpoint called %d times, want 2 (original + one replay)", jobCalls)
	}
	if tok, _ := sess.AccessToken(); tok != "fresh-tok" {
		t.Errorf("stored access token = %q, want %q", tok, "fresh-tok")
	}
}

func TestRefreshFailureClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid"}) //nolint:errcheck
	}))
	defer srv.Close()

	sess := authedSession(t, "expired-tok", "dead-refresh")
	c := New(srv.URL, sess)

	expired := false
	c.OnAuthExpired(func() { expired = true })

	_, err := c.ListJobs(context.Background(), 1, "", "", "", "")
	if err == nil {
		t.Fatal("expected error after failed refresh")
	}
	if !IsAuthError(err) {
		t.Errorf("error = %v, want auth error", err)
	}
	if !expired {
		t.Error("OnAuthExpired callback not fired")
	}
	if _, status := sess.AccessToken(); status != session.TokenAbsent {
		t.Errorf("token status = %v, want TokenAbsent", status)
	}
	if sess.State() != session.Anonymous {
		t.Errorf("state = %v, want Anonymous", sess.State())
	}
}

func TestRetryCappedAtOne(t *testing.T) {
	jobCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/jobs/":
			// Always 401, even with the fresh token.
			jobCalls++
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "nope"}) //nolint:errcheck
		case "/api/token/refresh/":
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh-tok"}) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", "ref"))
	_, err := c.ListJobs(context.Background(), 1, "", "", "", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if jobCalls != 2 {
		t.Errorf("jobs endpoint called %d times, want exactly 2", jobCalls)
	}
}

func TestErrorPayloadDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "boom"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.GetJob(context.Background(), 5)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("error = %q, want it to contain 'boom'", got)
	}
	if !IsStatus(err, 500) {
		t.Errorf("IsStatus(err, 500) = false")
	}
}

func TestNotFoundClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", ""))
	_, err := c.GetProfile(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(err) = false for 404, err = %v", err)
	}
}

func TestDoRequestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(domain.Job{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	if _, err := c.GetJob(ctx, 1); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestIsPublic(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/auth/login/", true},
		{"/AUTH/LOGIN/", true},
		{"/auth/register/", true},
		{"/api/token/refresh/", true},
		{"/auth/logout/", false},
		{"/api/jobs/", false},
	}
	for _, tt := range tests {
		if got := isPublic(tt.path); got != tt.want {
			t.Errorf("isPublic(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
