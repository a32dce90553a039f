package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobdeck/jobdeck/internal/browser"
	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

// profileState is the state machine for profile interactions.
type profileState int

const (
	psNormal       profileState = iota
	psEditing                   // multi-field edit form
	psUploadResume              // path prompt for resume upload
	psUploadImage               // path prompt for image upload
)

type editField int

const (
	editJobTitle editField = iota
	editCompany
	editCity
	editLevel // cycled with h/l, not typed
	editSkills
	editBio
	numEditFields
)

var editFieldLabels = [numEditFields]string{"job title", "company", "city", "level", "skills", "bio"}

// -- messages --

type myProfileMsg struct {
	profile *domain.Profile
	err     error
}

type myStatsMsg struct {
	stats *domain.MyProfileStats
	err   error
}

type profileSavedMsg struct {
	profile *domain.Profile
	err     error
}

type uploadDoneMsg struct {
	kind    string // "resume" or "image"
	profile *domain.Profile
	err     error
}

// -- model --

type youModel struct {
	client  *client.Client
	user    *domain.User
	profile *domain.Profile
	stats   *domain.MyProfileStats

	// true once GetMyProfile came back 404: edit creates instead of patching
	missing bool

	state     profileState
	fields    [numEditFields]string
	focus     editField
	saving    bool
	path      string // upload path prompt
	statusMsg string
	errMsg    string
	loading   bool
	width     int
	height    int
}

func newYouModel(c *client.Client) youModel {
	return youModel{client: c, loading: true}
}

func (m youModel) Init() tea.Cmd {
	return tea.Batch(m.loadProfile(), m.loadStats())
}

func (m youModel) loadProfile() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		profile, err := c.GetMyProfile(context.Background())
		return myProfileMsg{profile: profile, err: err}
	}
}

func (m youModel) loadStats() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := c.MyStats(context.Background())
		return myStatsMsg{stats: stats, err: err}
	}
}

func (m youModel) Update(msg tea.Msg) (youModel, tea.Cmd) {
	switch msg := msg.(type) {
	case myProfileMsg:
		m.loading = false
		if msg.err != nil {
			if client.IsNotFound(msg.err) {
				m.missing = true
				m.profile = nil
				m.errMsg = ""
			} else {
				m.errMsg = client.Humanize(msg.err)
			}
			return m, nil
		}
		m.missing = false
		m.errMsg = ""
		m.profile = msg.profile
		return m, nil

	case myStatsMsg:
		if msg.err == nil {
			m.stats = msg.stats
		}
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.statusMsg = client.Humanize(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.missing = false
		m.state = psNormal
		m.statusMsg = "saved"
		return m, nil

	case uploadDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.statusMsg = client.Humanize(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.state = psNormal
		m.path = ""
		m.statusMsg = msg.kind + " uploaded"
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.saving {
			return m, nil
		}
		switch m.state {
		case psEditing:
			return m.handleKeyEditing(msg)
		case psUploadResume, psUploadImage:
			return m.handleKeyUpload(msg)
		}
		return m.handleKeyNormal(msg)
	}
	return m, nil
}

func (m youModel) handleKeyNormal(msg tea.KeyMsg) (youModel, tea.Cmd) {
	switch msg.String() {
	case "e":
		m.state = psEditing
		m.focus = editJobTitle
		if m.profile != nil {
			m.fields = [numEditFields]string{
				m.profile.JobTitle,
				m.profile.Company,
				m.profile.City,
				m.profile.ExperienceLevel,
				m.profile.Skills,
				m.profile.Bio,
			}
		} else {
			m.fields = [numEditFields]string{}
		}
	case "u":
		if m.profile != nil {
			m.state = psUploadResume
			m.path = ""
		}
	case "i":
		if m.profile != nil {
			m.state = psUploadImage
			m.path = ""
		}
	case "v":
		if m.profile != nil {
			return m.toggleAvailability()
		}
	case "o":
		if m.profile != nil {
			if url := firstLink(*m.profile); url != "" {
				browser.Open(url) //nolint:errcheck // best-effort browser open
			}
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadProfile(), m.loadStats())
	}
	return m, nil
}

func (m youModel) toggleAvailability() (youModel, tea.Cmd) {
	next := !m.profile.IsAvailable
	m.saving = true
	c := m.client
	return m, func() tea.Msg {
		profile, err := c.PatchMyProfile(context.Background(), domain.ProfilePayload{IsAvailable: &next})
		return profileSavedMsg{profile: profile, err: err}
	}
}

func (m youModel) handleKeyEditing(msg tea.KeyMsg) (youModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numEditFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numEditFields) % numEditFields
	case "esc":
		m.state = psNormal
	case "ctrl+s":
		return m.save()
	case "enter":
		if m.focus == editBio {
			m.fields[editBio] += "\n"
		} else {
			m.focus = (m.focus + 1) % numEditFields
		}
	default:
		key := msg.String()
		if m.focus == editLevel {
			// Cycle the level vocabulary with h/l instead of typing.
			if key == "h" || key == "l" {
				levels := domain.ExperienceLevels
				idx := 0
				for i, lvl := range levels {
					if lvl == m.fields[editLevel] {
						idx = i
						break
					}
				}
				if key == "l" {
					idx = (idx + 1) % len(levels)
				} else {
					idx = (idx - 1 + len(levels)) % len(levels)
				}
				m.fields[editLevel] = levels[idx]
			}
			return m, nil
		}
		if key == "backspace" || len(key) == 1 {
			m.fields[m.focus] = editRune(m.fields[m.focus], key)
		}
	}
	return m, nil
}

func (m youModel) save() (youModel, tea.Cmd) {
	payload := domain.ProfilePayload{
		JobTitle:        strings.TrimSpace(m.fields[editJobTitle]),
		Company:         strings.TrimSpace(m.fields[editCompany]),
		City:            strings.TrimSpace(m.fields[editCity]),
		ExperienceLevel: m.fields[editLevel],
		Skills:          strings.TrimSpace(m.fields[editSkills]),
		Bio:             strings.TrimSpace(m.fields[editBio]),
	}
	m.saving = true
	c := m.client
	missing := m.missing
	return m, func() tea.Msg {
		var profile *domain.Profile
		var err error
		if missing {
			profile, err = c.CreateProfile(context.Background(), payload)
		} else {
			profile, err = c.PatchMyProfile(context.Background(), payload)
		}
		return profileSavedMsg{profile: profile, err: err}
	}
}

func (m youModel) handleKeyUpload(msg tea.KeyMsg) (youModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = psNormal
		m.path = ""
	case "enter":
		path := strings.TrimSpace(m.path)
		if path == "" {
			m.statusMsg = "path required"
			return m, nil
		}
		kind := "resume"
		if m.state == psUploadImage {
			kind = "image"
		}
		id := m.profile.ID
		c := m.client
		m.saving = true
		return m, func() tea.Msg {
			f, err := os.Open(path)
			if err != nil {
				return uploadDoneMsg{kind: kind, err: err}
			}
			defer f.Close() //nolint:errcheck

			name := filepath.Base(path)
			var profile *domain.Profile
			if kind == "resume" {
				profile, err = c.UploadResume(context.Background(), id, name, f)
			} else {
				profile, err = c.UploadProfileImage(context.Background(), id, name, f)
			}
			return uploadDoneMsg{kind: kind, profile: profile, err: err}
		}
	default:
		m.path = editRune(m.path, msg.String())
	}
	return m, nil
}

// helpKeys returns context-sensitive help text based on the current state.
func (m youModel) helpKeys() string {
	switch m.state {
	case psEditing:
		return helpEntry("tab", "next") + "  " + helpEntry("h/l", "level") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case psUploadResume, psUploadImage:
		return helpEntry("enter", "upload") + "  " + helpEntry("esc", "cancel")
	default:
		return helpEntry("e", "edit") + "  " + helpEntry("u", "resume") + "  " + helpEntry("i", "image") + "  " + helpEntry("v", "availability") + "  " + helpEntry("o", "links") + "  " + helpEntry("q", "quit")
	}
}

func (m youModel) View() string {
	var b strings.Builder

	// Identity header from the session user.
	if m.user != nil {
		b.WriteString(" " + selectedStyle.Render(m.user.DisplayName()))
		if m.user.Email != "" {
			b.WriteString("  " + metaStyle.Render(m.user.Email))
		}
		b.WriteString("\n")
	}

	if m.stats != nil {
		line := fmt.Sprintf("%d views · %d applications · %d shortlists",
			m.stats.TotalViews, m.stats.TotalApplications, m.stats.TotalShortlists)
		b.WriteString(" " + metaStyle.Render(line) + "\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + okStyle.Render(m.statusMsg) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n " + errorStyle.Render(m.errMsg) + "  " + helpEntry("r", "retry") + "\n")
	}

	switch m.state {
	case psEditing:
		b.WriteString(m.viewEditForm())
	case psUploadResume:
		b.WriteString("\n " + inputPromptStyle.Render("resume path:") + " " + m.path + accentStyle.Render("█") + "\n")
	case psUploadImage:
		b.WriteString("\n " + inputPromptStyle.Render("image path:") + " " + m.path + accentStyle.Render("█") + "\n")
	default:
		b.WriteString(m.viewProfile())
	}

	if m.saving {
		b.WriteString(" " + dimStyle.Render("saving...") + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

func (m youModel) viewProfile() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("── PROFILE ──") + "\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.missing {
		b.WriteString(" " + dimStyle.Render("no profile yet · press e to create one") + "\n")
		return b.String()
	}
	if m.profile == nil {
		return b.String()
	}
	p := m.profile

	title := p.JobTitle
	if title == "" {
		title = "(no title)"
	}
	line := " " + normalStyle.Render(title)
	if p.Company != "" {
		line += metaStyle.Render(" · ") + metaStyle.Render(p.Company)
	}
	if p.ExperienceLevel != "" {
		line += metaStyle.Render(" · ") + LevelBadge(p.ExperienceLevel)
	}
	b.WriteString(line + "\n")

	place := strings.TrimSpace(strings.Trim(p.City+", "+p.Country, ", "))
	if place != "" {
		b.WriteString(" " + metaStyle.Render(place) + "\n")
	}

	avail := dimStyle.Render("not available for hire")
	if p.IsAvailable {
		avail = okStyle.Render("available for hire")
	}
	b.WriteString(" " + avail + " " + helpKeyStyle.Render("v") + "\n")

	if p.Bio != "" {
		detailWidth := m.width - 4
		if detailWidth < 40 {
			detailWidth = 40
		}
		b.WriteString("\n")
		wrapped := lipgloss.NewStyle().Width(detailWidth).Render(p.Bio)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(" " + normalStyle.Render(line) + "\n")
		}
	}

	if p.Skills != "" {
		b.WriteString("\n " + metaStyle.Render("skills: "+p.Skills) + "\n")
	}

	if p.ResumeURL != "" {
		b.WriteString(" " + metaStyle.Render("resume: "+p.ResumeURL) + "\n")
	}
	if link := firstLink(*p); link != "" {
		b.WriteString(" " + accentStyle.Render(link) + "  " + helpEntry("o", "open") + "\n")
	}

	return b.String()
}

func (m youModel) viewEditForm() string {
	var b strings.Builder
	b.WriteString("\n " + sectionHeaderStyle.Render("── EDIT PROFILE ──") + "\n")

	for f := editField(0); f < numEditFields; f++ {
		label := inputPromptStyle.Render(editFieldLabels[f] + ":")
		value := m.fields[f]

		if f == editLevel {
			shown := LevelBadge(value)
			if value == "" {
				shown = dimStyle.Render("(none)")
			}
			if f == m.focus {
				b.WriteString("   " + accentStyle.Render(">") + " " + label + " " + shown + " " + helpKeyStyle.Render("h/l") + "\n")
			} else {
				b.WriteString("     " + label + " " + shown + "\n")
			}
			continue
		}

		if f == m.focus {
			b.WriteString("   " + accentStyle.Render(">") + " " + label + " " + value + accentStyle.Render("█") + "\n")
		} else {
			b.WriteString("     " + label + " " + dimStyle.Render(oneLine(value)) + "\n")
		}
	}

	b.WriteString("   " + dimStyle.Render("tab next · ctrl+s save · esc cancel") + "\n")
	return b.String()
}
