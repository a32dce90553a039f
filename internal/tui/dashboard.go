package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobdeck/jobdeck/internal/dashboard"
	"github.com/jobdeck/jobdeck/pkg/client"
)

// -- messages --

type overviewLoadedMsg struct {
	overview *dashboard.Overview
	err      error
}

// -- model --

// dashModel renders the aggregate overview. All sections load together;
// any failure shows a single error with retry.
type dashModel struct {
	client   *client.Client
	overview *dashboard.Overview
	loading  bool
	errMsg   string
	width    int
	height   int
}

func newDashModel(c *client.Client) dashModel {
	return dashModel{client: c, loading: true}
}

func (m dashModel) load() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		ov, err := dashboard.New(c).LoadAll(context.Background())
		return overviewLoadedMsg{overview: ov, err: err}
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.load()
}

func (m dashModel) Update(msg tea.Msg) (dashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = client.Humanize(msg.err)
			m.overview = nil
			return m, nil
		}
		m.errMsg = ""
		m.overview = msg.overview
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			m.errMsg = ""
			return m, m.load()
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	var b strings.Builder
	b.WriteString(" " + sectionHeaderStyle.Render("── DASHBOARD ──") + "\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.errMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "  " + helpEntry("r", "retry") + "\n")
		return b.String()
	}
	if m.overview == nil {
		return b.String()
	}
	ov := m.overview

	// Platform stats line
	var stats []string
	if ov.JobStats != nil {
		stats = append(stats, fmt.Sprintf("%s jobs", formatNum(ov.JobStats.TotalJobs)))
		stats = append(stats, fmt.Sprintf("%s applications", formatNum(ov.JobStats.TotalApplications)))
	}
	if ov.ProfileStats != nil {
		stats = append(stats, fmt.Sprintf("%s profiles", formatNum(ov.ProfileStats.TotalProfiles)))
		stats = append(stats, fmt.Sprintf("%d hireable", ov.ProfileStats.Available))
	}
	if len(stats) > 0 {
		b.WriteString(" " + normalStyle.Render(strings.Join(stats, dimStyle.Render(" · "))) + "\n")
	}

	// Featured jobs
	if len(ov.FeaturedJobs) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render("FEATURED") + "\n")
		n := len(ov.FeaturedJobs)
		if n > 5 {
			n = 5
		}
		for _, job := range ov.FeaturedJobs[:n] {
			dot := CategoryStyle(job.Category.Slug).Render("●")
			line := "  " + dot + " " + normalStyle.Render(truncStr(job.Title, 34))
			if job.CompanyName != "" {
				line += " " + metaStyle.Render(truncStr(job.CompanyName, 20))
			}
			if sal := job.SalaryRange(); sal != "" {
				line += " " + salaryStyle.Render(sal)
			}
			b.WriteString(line + "\n")
		}
	}

	// Categories by job count
	if len(ov.CategoryStats) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render("CATEGORIES") + "\n")
		n := len(ov.CategoryStats)
		if n > 6 {
			n = 6
		}
		for _, cat := range ov.CategoryStats[:n] {
			bar := strings.Repeat("▇", barLen(cat.JobCount, ov.CategoryStats[0].JobCount, 20))
			fmt.Fprintf(&b, "  %-16s %s %s\n",
				normalStyle.Render(truncStr(cat.Name, 16)),
				accentStyle.Render(bar),
				metaStyle.Render(fmt.Sprintf("%d", cat.JobCount)))
		}
	}

	// Salary by level
	if ov.JobStats != nil && len(ov.JobStats.AvgSalaryByLevel) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render("AVG SALARY BY LEVEL") + "\n")
		for _, ls := range ov.JobStats.AvgSalaryByLevel {
			fmt.Fprintf(&b, "  %s %s\n",
				LevelBadge(ls.ExperienceLevel),
				salaryStyle.Render(fmt.Sprintf("%.0f", ls.AvgSalary)))
		}
	}

	// Hireable candidates preview
	if len(ov.Candidates) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render(fmt.Sprintf("CANDIDATES (%d)", len(ov.Candidates))) + "\n")
		n := len(ov.Candidates)
		if n > 4 {
			n = 4
		}
		for _, p := range ov.Candidates[:n] {
			line := "  " + normalStyle.Render(truncStr(p.User.DisplayName(), 20))
			if p.JobTitle != "" {
				line += " " + metaStyle.Render(truncStr(p.JobTitle, 26))
			}
			line += " " + LevelBadge(p.ExperienceLevel)
			b.WriteString(line + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}

// barLen scales count against the largest bucket into a bar of at most
// width cells, never zero for a non-zero count.
func barLen(count, biggest, width int) int {
	if count <= 0 || biggest <= 0 {
		return 0
	}
	n := count * width / biggest
	if n < 1 {
		n = 1
	}
	return n
}
