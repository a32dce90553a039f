package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobdeck/jobdeck/internal/browser"
	"github.com/jobdeck/jobdeck/internal/query"
	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

// -- messages --

type candidatesLoadedMsg struct {
	profiles []domain.Profile
	err      error
}

// -- model --

// candidatesModel shows the available-for-hire pool. The collection is
// bounded, so it is fetched once and filtered in memory.
type candidatesModel struct {
	client  *client.Client
	local   *query.Local[domain.Profile]
	cursor  int
	search  string
	editing bool
	detail  bool
	loading bool
	errMsg  string
	width   int
	height  int
}

func newCandidatesModel(c *client.Client) candidatesModel {
	return candidatesModel{
		client:  c,
		local:   query.NewLocal(candidateMatches),
		loading: true,
	}
}

// candidateMatches tests one profile against the active filter set.
func candidateMatches(p domain.Profile, f query.Filters) bool {
	if lvl := f.Get(query.KeyExperience); lvl != "" && p.ExperienceLevel != lvl {
		return false
	}
	if q := f.Get(query.KeySearch); q != "" {
		hay := p.User.DisplayName() + " " + p.User.Username + " " + p.JobTitle + " " + p.Skills + " " + p.City
		if !query.ContainsFold(hay, q) {
			return false
		}
	}
	return true
}

func (m candidatesModel) load() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		profiles, err := c.AvailableCandidates(context.Background())
		return candidatesLoadedMsg{profiles: profiles, err: err}
	}
}

func (m candidatesModel) Init() tea.Cmd {
	return m.load()
}

func (m candidatesModel) Update(msg tea.Msg) (candidatesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case candidatesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = client.Humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.local.SetItems(msg.profiles)
		if m.cursor >= len(m.local.Items()) {
			m.cursor = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateSearch(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m candidatesModel) updateSearch(msg tea.KeyMsg) (candidatesModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.local.ApplyFilters(m.local.Filters().Merge(query.Filters{query.KeySearch: strings.TrimSpace(m.search)}))
		m.cursor = 0
	case "esc":
		m.editing = false
		m.search = ""
		m.local.ApplyFilters(m.local.Filters().Merge(query.Filters{query.KeySearch: ""}))
		m.cursor = 0
	default:
		m.search = editRune(m.search, msg.String())
	}
	return m, nil
}

func (m candidatesModel) updateList(msg tea.KeyMsg) (candidatesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.local.Items())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.local.Items()) {
			m.detail = true
		}
	case "/":
		m.editing = true
		m.search = m.local.Filters().Get(query.KeySearch)
	case "e":
		lvl := nextLevel(m.local.Filters().Get(query.KeyExperience))
		m.local.ApplyFilters(m.local.Filters().Merge(query.Filters{query.KeyExperience: lvl}))
		m.cursor = 0
	case "x":
		if m.local.Filters().IsActive() {
			m.search = ""
			m.local.ClearFilters()
			m.cursor = 0
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m candidatesModel) updateDetail(msg tea.KeyMsg) (candidatesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
	case "o":
		if m.cursor < len(m.local.Items()) {
			p := m.local.Items()[m.cursor]
			if url := firstLink(p); url != "" {
				browser.Open(url) //nolint:errcheck // best-effort browser open
			}
		}
	}
	return m, nil
}

// firstLink picks the most useful external link on a profile.
func firstLink(p domain.Profile) string {
	switch {
	case p.WebsiteURL != "":
		return p.WebsiteURL
	case p.GithubURL != "":
		return p.GithubURL
	case p.LinkedinURL != "":
		return p.LinkedinURL
	}
	return ""
}

func (m candidatesModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder
	f := m.local.Filters()

	header := " " + sectionHeaderStyle.Render("── CANDIDATES ──")
	header += "  " + metaStyle.Render(fmt.Sprintf("%d available for hire", m.local.Total()))
	if f.IsActive() {
		header += "  " + searchStyle.Render(fmt.Sprintf("%d shown", len(m.local.Items()))) + " " + helpKeyStyle.Render("x clears")
	}
	b.WriteString(header + "\n")

	if m.editing {
		b.WriteString(" " + searchStyle.Render("/ "+m.search+"█"))
	} else if q := f.Get(query.KeySearch); q != "" {
		b.WriteString(" " + searchStyle.Render("/ "+q))
	} else {
		b.WriteString(" " + dimStyle.Render("/ search..."))
	}
	if lvl := f.Get(query.KeyExperience); lvl != "" {
		b.WriteString("   " + LevelBadge(lvl) + " " + helpKeyStyle.Render("e"))
	} else {
		b.WriteString("   " + dimStyle.Render("any level") + " " + helpKeyStyle.Render("e"))
	}
	b.WriteString("\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.errMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "  " + helpEntry("r", "retry") + "\n")
		return b.String()
	}

	items := m.local.Items()
	if len(items) == 0 {
		b.WriteString(" " + dimStyle.Render("no candidates match") + "\n")
		return b.String()
	}

	maxVisible := m.height - 5
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(items) && i < start+maxVisible; i++ {
		p := items[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		name := truncStr(p.User.DisplayName(), 20)
		title := truncStr(p.JobTitle, 28)
		loc := truncStr(p.City, 14)

		line := cursor + nameStyle.Render(fmt.Sprintf("%-20s", name)) + " " +
			normalStyle.Render(fmt.Sprintf("%-28s", title)) + " " +
			metaStyle.Render(fmt.Sprintf("%-14s", loc)) + " " +
			LevelBadge(p.ExperienceLevel)
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}

func (m candidatesModel) viewDetail() string {
	items := m.local.Items()
	if m.cursor >= len(items) {
		return ""
	}
	p := items[m.cursor]

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")
	b.WriteString(" " + selectedStyle.Render(p.User.DisplayName()) + "\n")

	meta := " "
	if p.JobTitle != "" {
		meta += normalStyle.Render(p.JobTitle)
	}
	if p.Company != "" {
		meta += metaStyle.Render(" · ") + metaStyle.Render(p.Company)
	}
	if p.ExperienceLevel != "" {
		meta += metaStyle.Render(" · ") + LevelBadge(p.ExperienceLevel)
	}
	b.WriteString(meta + "\n")

	place := strings.TrimSpace(strings.Trim(p.City+", "+p.Country, ", "))
	if place != "" {
		b.WriteString(" " + metaStyle.Render(place) + "\n")
	}
	b.WriteString("\n")

	if p.Bio != "" {
		detailWidth := m.width - 4
		if detailWidth < 40 {
			detailWidth = 40
		}
		wrapped := lipgloss.NewStyle().Width(detailWidth).Render(p.Bio)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(" " + normalStyle.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	if len(p.SkillsList) > 0 {
		b.WriteString(" " + metaStyle.Render("skills: "+strings.Join(p.SkillsList, ", ")) + "\n")
	} else if p.Skills != "" {
		b.WriteString(" " + metaStyle.Render("skills: "+p.Skills) + "\n")
	}

	if link := firstLink(p); link != "" {
		b.WriteString(" " + accentStyle.Render(link) + "  " + helpEntry("o", "open") + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
