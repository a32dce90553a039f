package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAPIURLDefault(t *testing.T) {
	t.Setenv("JOBDECK_API_URL", "")
	if got := apiURL(); got != "http://127.0.0.1:8000" {
		t.Errorf("apiURL() = %q, want the local default", got)
	}
}

func TestAPIURLFromEnv(t *testing.T) {
	t.Setenv("JOBDECK_API_URL", "https://api.jobdeck.dev")
	if got := apiURL(); got != "https://api.jobdeck.dev" {
		t.Errorf("apiURL() = %q, want the env override", got)
	}
}

func TestSessionPathFromEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("JOBDECK_SESSION_FILE", want)
	got, err := sessionPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("sessionPath() = %q, want %q", got, want)
	}
}

func TestSessionPathDefault(t *testing.T) {
	t.Setenv("JOBDECK_SESSION_FILE", "")
	got, err := sessionPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, filepath.Join(".jobdeck", "session.json")) {
		t.Errorf("sessionPath() = %q, want it under ~/.jobdeck", got)
	}
}
