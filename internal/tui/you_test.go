package tui

import (
	"strings"
	"testing"

	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

func sampleMyProfile() *domain.Profile {
	return &domain.Profile{
		ID:              7,
		User:            domain.User{Username: "alice", FullName: "Alice Liddell"},
		JobTitle:        "Backend Engineer",
		Company:         "Acme",
		City:            "Berlin",
		ExperienceLevel: "mid",
		Skills:          "go, postgres",
		Bio:             "I build services.",
		IsAvailable:     true,
	}
}

func newTestYou(t *testing.T) youModel {
	t.Helper()
	m := newYouModel(nil)
	m.user = &domain.User{Username: "alice", FullName: "Alice Liddell", Email: "alice@example.com"}
	m.width = 80
	m.height = 40
	m, _ = m.Update(myProfileMsg{profile: sampleMyProfile()})
	return m
}

func TestYouRendersProfile(t *testing.T) {
	m := newTestYou(t)
	m, _ = m.Update(myStatsMsg{stats: &domain.MyProfileStats{TotalViews: 12, TotalApplications: 3, TotalShortlists: 1}})

	v := m.View()
	for _, want := range []string{
		"Alice Liddell", "alice@example.com",
		"12 views · 3 applications · 1 shortlists",
		"Backend Engineer", "Acme",
		"available for hire",
		"skills: go, postgres",
	} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in view, got:\n%s", want, v)
		}
	}
}

func TestYouMissingProfile(t *testing.T) {
	m := newYouModel(nil)
	m.width = 80
	m.height = 40
	m, _ = m.Update(myProfileMsg{err: &client.APIError{StatusCode: 404}})

	if !m.missing {
		t.Fatal("expected missing=true after a 404")
	}
	if m.errMsg != "" {
		t.Error("expected a 404 treated as a state, not an error")
	}
	if !strings.Contains(m.View(), "no profile yet") {
		t.Error("expected the create hint in view")
	}
}

func TestYouEditPrefillsFromProfile(t *testing.T) {
	m := newTestYou(t)
	m, _ = m.Update(keyMsg("e"))

	if m.state != psEditing {
		t.Fatal("expected 'e' to open the edit form")
	}
	if m.fields[editJobTitle] != "Backend Engineer" || m.fields[editLevel] != "mid" {
		t.Errorf("expected fields prefilled, got %v", m.fields)
	}
	if m.focus != editJobTitle {
		t.Error("expected focus on the first field")
	}
}

func TestYouEditTypingAndFocus(t *testing.T) {
	m := newTestYou(t)
	m, _ = m.Update(keyMsg("e"))

	m, _ = m.Update(keyMsg("backspace"))
	if m.fields[editJobTitle] != "Backend Enginee" {
		t.Errorf("expected backspace applied, got %q", m.fields[editJobTitle])
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.focus != editCompany {
		t.Errorf("expected focus on company after tab, got %d", m.focus)
	}

	// Enter advances everywhere except the bio, where it is a newline.
	m.focus = editBio
	m, _ = m.Update(keyMsg("enter"))
	if !strings.HasSuffix(m.fields[editBio], "\n") {
		t.Error("expected enter to add a newline in the bio")
	}
}

func TestYouEditLevelCycling(t *testing.T) {
	m := newTestYou(t)
	m, _ = m.Update(keyMsg("e"))
	m.focus = editLevel

	m, _ = m.Update(keyMsg("l"))
	if m.fields[editLevel] != "senior" {
		t.Errorf("expected 'l' to advance mid -> senior, got %q", m.fields[editLevel])
	}
	m, _ = m.Update(keyMsg("h"))
	if m.fields[editLevel] != "mid" {
		t.Errorf("expected 'h' to step back to mid, got %q", m.fields[editLevel])
	}

	// Typing into the level field is ignored.
	m, _ = m.Update(keyMsg("x"))
	if m.fields[editLevel] != "mid" {
		t.Error("expected free typing ignored on the level field")
	}
}

func TestYouSaveLocksAndApplies(t *testing.T) {
	m := newTestYou(t)
	m, _ = m.Update(keyMsg("e"))

	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if !m.saving {
		t.Fatal("expected saving=true while the request is in flight")
	}

	// Keys are ignored until the save resolves.
	m, _ = m.Update(keyMsg("x"))
	if m.fields[editJobTitle] != "Backend Engineer" {
		t.Error("expected input ignored while saving")
	}

	saved := sampleMyProfile()
	saved.JobTitle = "Staff Engineer"
	m, _ = m.Update(profileSavedMsg{profile: saved})

	if m.saving || m.state != psNormal {
		t.Error("expected the form closed after a successful save")
	}
	if m.profile.JobTitle != "Staff Engineer" {
		t.Error("expected the saved profile applied")
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("expected the saved status in view")
	}
}

func TestYouToggleAvailability(t *testing.T) {
	m := newTestYou(t)

	m, cmd := m.Update(keyMsg("v"))
	if cmd == nil {
		t.Fatal("expected a patch command from 'v'")
	}
	if !m.saving {
		t.Error("expected saving=true while the toggle is in flight")
	}
}

func TestYouUploadPrompt(t *testing.T) {
	m := newTestYou(t)

	m, _ = m.Update(keyMsg("u"))
	if m.state != psUploadResume {
		t.Fatal("expected 'u' to open the resume path prompt")
	}

	// Enter with no path is rejected.
	m, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("expected no upload without a path")
	}
	if m.statusMsg != "path required" {
		t.Errorf("unexpected status %q", m.statusMsg)
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.state != psNormal {
		t.Error("expected esc to close the prompt")
	}
}

func TestYouUploadRequiresProfile(t *testing.T) {
	m := newYouModel(nil)
	m.width = 80
	m.height = 40
	m, _ = m.Update(myProfileMsg{err: &client.APIError{StatusCode: 404}})

	m, _ = m.Update(keyMsg("u"))
	if m.state != psNormal {
		t.Error("expected uploads unavailable without a profile")
	}
	m, _ = m.Update(keyMsg("i"))
	if m.state != psNormal {
		t.Error("expected image upload unavailable without a profile")
	}
}

func TestYouHelpKeysFollowState(t *testing.T) {
	m := newTestYou(t)
	if !strings.Contains(m.helpKeys(), "edit") {
		t.Error("expected edit hint in normal state")
	}
	m.state = psEditing
	if !strings.Contains(m.helpKeys(), "save") {
		t.Error("expected save hint while editing")
	}
	m.state = psUploadResume
	if !strings.Contains(m.helpKeys(), "upload") {
		t.Error("expected upload hint on the path prompt")
	}
}
