package domain

import "testing"

func TestSalaryRange(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want string
	}{
		{"both bounds", Job{SalaryMin: "50000", SalaryMax: "70000"}, "50000 - 70000"},
		{"min only", Job{SalaryMin: "50000"}, "from 50000"},
		{"max only", Job{SalaryMax: "70000"}, "up to 70000"},
		{"unset", Job{}, ""},
	}
	for _, tt := range tests {
		if got := tt.job.SalaryRange(); got != tt.want {
			t.Errorf("%s: SalaryRange() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValidExperienceLevel(t *testing.T) {
	for _, level := range ExperienceLevels {
		if !ValidExperienceLevel(level) {
			t.Errorf("ValidExperienceLevel(%q) = false, want true", level)
		}
	}
	if ValidExperienceLevel("wizard") {
		t.Error("ValidExperienceLevel(\"wizard\") = true, want false")
	}
	if ValidExperienceLevel("") {
		t.Error("ValidExperienceLevel(\"\") = true, want false")
	}
}

func TestUserDisplayName(t *testing.T) {
	u := User{Username: "alice", FullName: "Alice Liddell"}
	if got := u.DisplayName(); got != "Alice Liddell" {
		t.Errorf("DisplayName() = %q, want %q", got, "Alice Liddell")
	}
	u.FullName = ""
	if got := u.DisplayName(); got != "alice" {
		t.Errorf("DisplayName() = %q, want %q", got, "alice")
	}
}

func TestPaginatedHasNext(t *testing.T) {
	next := "http://example.test/api/jobs/?page=2"
	p := Paginated[Job]{Count: 30, Next: &next}
	if !p.HasNext() {
		t.Error("HasNext() = false with non-nil next")
	}
	if p.HasPrevious() {
		t.Error("HasPrevious() = true with nil previous")
	}
}
