package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobdeck/jobdeck/internal/query"
	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

// -- messages --

type jobsResultMsg struct {
	res query.Result[domain.Job]
}

type categoriesLoadedMsg struct {
	categories []domain.Category
	err        error
}

type jobDetailMsg struct {
	job *domain.Job
	err error
}

type applyResultMsg struct {
	app *domain.Application
	err error
}

type copyResultMsg struct{ err error }

// -- model --

type jobsModel struct {
	client     *client.Client
	engine     *query.Engine[domain.Job]
	categories []domain.Category
	cursor     int

	search     string
	editing    bool // typing in search
	location   string
	editingLoc bool // typing in location

	detail     bool
	job        *domain.Job // full record for the detail view
	applying   bool        // cover letter form open
	submitting bool        // application in flight, form locked
	cover      string

	statusMsg string
	width     int
	height    int
}

func newJobsModel(c *client.Client) jobsModel {
	m := jobsModel{client: c}
	if c != nil {
		m.engine = query.NewEngine(jobsFetch(c))
	} else {
		m.engine = query.NewEngine(func(context.Context, int, query.Filters) (query.Page[domain.Job], error) {
			return query.Page[domain.Job]{}, nil
		})
	}
	return m
}

// jobsFetch adapts the paginated jobs endpoint to the engine contract.
func jobsFetch(c *client.Client) query.FetchFunc[domain.Job] {
	return func(ctx context.Context, page int, f query.Filters) (query.Page[domain.Job], error) {
		resp, err := c.ListJobs(ctx, page,
			f.Get(query.KeyCategory),
			f.Get(query.KeyLocation),
			f.Get(query.KeyExperience),
			f.Get(query.KeySearch))
		if err != nil {
			return query.Page[domain.Job]{}, err
		}
		return query.Page[domain.Job]{
			Items:       resp.Results,
			TotalCount:  resp.Count,
			HasNext:     resp.HasNext(),
			HasPrevious: resp.HasPrevious(),
		}, nil
	}
}

func (m jobsModel) Init() tea.Cmd {
	tk, err := m.engine.StartFetch(1)
	if err != nil {
		return nil
	}
	return tea.Batch(m.runTicket(tk), m.loadCategories())
}

// runTicket executes one issued fetch off the Update loop.
func (m jobsModel) runTicket(t query.Ticket) tea.Cmd {
	e := m.engine
	return func() tea.Msg {
		return jobsResultMsg{res: e.Run(context.Background(), t)}
	}
}

func (m jobsModel) loadCategories() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		categories, err := c.ListCategories(context.Background())
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m jobsModel) Update(msg tea.Msg) (jobsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsResultMsg:
		if !m.engine.Apply(msg.res) {
			return m, nil // superseded by a newer fetch
		}
		if m.cursor >= len(m.engine.Items()) {
			m.cursor = 0
		}
		return m, nil

	case categoriesLoadedMsg:
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case jobDetailMsg:
		if msg.err != nil {
			if client.IsNotFound(msg.err) {
				m.statusMsg = "job no longer exists"
				m.detail = false
			} else {
				m.statusMsg = client.Humanize(msg.err)
			}
			return m, nil
		}
		m.job = msg.job
		return m, nil

	case applyResultMsg:
		m.applying = false
		m.submitting = false
		m.cover = ""
		if msg.err != nil {
			m.statusMsg = client.Humanize(msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("application submitted (%s)", msg.app.Status)
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.applying {
			return m.updateApplyForm(msg)
		}
		if m.editing {
			return m.updateSearch(msg)
		}
		if m.editingLoc {
			return m.updateLocation(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// applyFilter overlays one filter key and restarts from page 1.
func (m jobsModel) applyFilter(key, value string) (jobsModel, tea.Cmd) {
	f := m.engine.Filters().Merge(query.Filters{key: value})
	tk, err := m.engine.ApplyFilters(f)
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	m.cursor = 0
	return m, m.runTicket(tk)
}

func (m jobsModel) updateSearch(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		return m.applyFilter(query.KeySearch, strings.TrimSpace(m.search))
	case "esc":
		m.editing = false
		m.search = ""
		return m.applyFilter(query.KeySearch, "")
	default:
		m.search = editRune(m.search, msg.String())
	}
	return m, nil
}

func (m jobsModel) updateLocation(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editingLoc = false
		return m.applyFilter(query.KeyLocation, strings.TrimSpace(m.location))
	case "esc":
		m.editingLoc = false
		m.location = ""
		return m.applyFilter(query.KeyLocation, "")
	default:
		m.location = editRune(m.location, msg.String())
	}
	return m, nil
}

func (m jobsModel) updateList(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.engine.Items())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.engine.Items()) {
			job := m.engine.Items()[m.cursor]
			m.detail = true
			m.job = nil
			c := m.client
			return m, func() tea.Msg {
				full, err := c.GetJob(context.Background(), job.ID)
				return jobDetailMsg{job: full, err: err}
			}
		}
	case "/":
		m.editing = true
		m.search = m.engine.Filters().Get(query.KeySearch)
	case "f":
		m.editingLoc = true
		m.location = m.engine.Filters().Get(query.KeyLocation)
	case "c":
		return m.applyFilter(query.KeyCategory, m.nextCategory())
	case "e":
		return m.applyFilter(query.KeyExperience, nextLevel(m.engine.Filters().Get(query.KeyExperience)))
	case "x":
		if m.engine.Filters().IsActive() {
			m.search = ""
			m.location = ""
			tk, err := m.engine.ClearFilters()
			if err != nil {
				return m, nil
			}
			m.cursor = 0
			return m, m.runTicket(tk)
		}
	case "]", "right":
		if m.engine.HasNext() && !m.engine.Loading() {
			tk, err := m.engine.StartFetch(m.engine.CurrentPage() + 1)
			if err != nil {
				return m, nil
			}
			m.cursor = 0
			return m, m.runTicket(tk)
		}
	case "[", "left":
		if m.engine.HasPrevious() && !m.engine.Loading() {
			tk, err := m.engine.StartFetch(m.engine.CurrentPage() - 1)
			if err != nil {
				return m, nil
			}
			m.cursor = 0
			return m, m.runTicket(tk)
		}
	case "r":
		tk, err := m.engine.StartFetch(m.engine.CurrentPage())
		if err != nil {
			return m, nil
		}
		return m, m.runTicket(tk)
	}
	return m, nil
}

func (m jobsModel) updateDetail(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
		m.job = nil
	case "a":
		m.applying = true
		m.cover = ""
	case "c":
		if m.job != nil && m.job.Description != "" {
			text := m.job.Description
			return m, func() tea.Msg {
				err := clipboard.WriteAll(text)
				return copyResultMsg{err: err}
			}
		}
	}
	return m, nil
}

func (m jobsModel) updateApplyForm(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	if m.submitting {
		return m, nil // locked until the in-flight application resolves
	}
	switch msg.String() {
	case "ctrl+s":
		if m.job == nil {
			m.applying = false
			return m, nil
		}
		cover := strings.TrimSpace(m.cover)
		if cover == "" {
			m.statusMsg = "cover letter required"
			return m, nil
		}
		m.submitting = true
		jobID := m.job.ID
		c := m.client
		return m, func() tea.Msg {
			app, err := c.ApplyToJob(context.Background(), jobID, cover)
			return applyResultMsg{app: app, err: err}
		}
	case "esc":
		m.applying = false
		m.cover = ""
	case "enter":
		m.cover += "\n"
	default:
		m.cover = editRune(m.cover, msg.String())
	}
	return m, nil
}

// nextCategory cycles the category filter: none -> first -> ... -> none.
func (m jobsModel) nextCategory() string {
	if len(m.categories) == 0 {
		return ""
	}
	current := m.engine.Filters().Get(query.KeyCategory)
	if current == "" {
		return m.categories[0].Slug
	}
	for i, cat := range m.categories {
		if cat.Slug == current {
			if i+1 < len(m.categories) {
				return m.categories[i+1].Slug
			}
			return "" // wrap to "all"
		}
	}
	return ""
}

// nextLevel cycles the experience filter through the known vocabulary.
func nextLevel(current string) string {
	if current == "" {
		return domain.ExperienceLevels[0]
	}
	for i, l := range domain.ExperienceLevels {
		if l == current {
			if i+1 < len(domain.ExperienceLevels) {
				return domain.ExperienceLevels[i+1]
			}
			return ""
		}
	}
	return ""
}

func (m jobsModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder
	f := m.engine.Filters()

	// Header line
	header := " " + sectionHeaderStyle.Render("── JOBS ──")
	if n := m.engine.TotalCount(); n > 0 {
		header += "  " + metaStyle.Render(fmt.Sprintf("%s open", formatNum(n)))
	}
	if n := f.ActiveCount(); n > 0 {
		header += "  " + searchStyle.Render(fmt.Sprintf("%d filters", n)) + " " + helpKeyStyle.Render("x clears")
	}
	b.WriteString(header + "\n")

	// Filter bar: search, location, category, level
	if m.editing {
		b.WriteString(" " + searchStyle.Render("/ "+m.search+"█"))
	} else if q := f.Get(query.KeySearch); q != "" {
		b.WriteString(" " + searchStyle.Render("/ "+q))
	} else {
		b.WriteString(" " + dimStyle.Render("/ search..."))
	}
	if m.editingLoc {
		b.WriteString("   " + searchStyle.Render("@ "+m.location+"█"))
	} else if loc := f.Get(query.KeyLocation); loc != "" {
		b.WriteString("   " + searchStyle.Render("@ "+loc) + " " + helpKeyStyle.Render("f"))
	} else {
		b.WriteString("   " + dimStyle.Render("@ anywhere") + " " + helpKeyStyle.Render("f"))
	}
	if cat := f.Get(query.KeyCategory); cat != "" {
		b.WriteString("   " + CategoryStyle(cat).Render(cat) + " " + helpKeyStyle.Render("c"))
	} else {
		b.WriteString("   " + dimStyle.Render("all categories") + " " + helpKeyStyle.Render("c"))
	}
	if lvl := f.Get(query.KeyExperience); lvl != "" {
		b.WriteString("   " + LevelBadge(lvl) + " " + helpKeyStyle.Render("e"))
	} else {
		b.WriteString("   " + dimStyle.Render("any level") + " " + helpKeyStyle.Render("e"))
	}
	b.WriteString("\n")

	// Separator
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}

	// A failed fetch keeps the previous page visible under the banner.
	if errMsg := m.engine.Err(); errMsg != "" {
		b.WriteString(" " + errorStyle.Render(errMsg) + "\n")
	}

	if m.engine.Loading() {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	}

	b.WriteString(m.viewList())
	return truncateToHeight(b.String(), m.height)
}

func (m jobsModel) viewList() string {
	jobs := m.engine.Items()
	if len(jobs) == 0 {
		if m.engine.Loading() {
			return ""
		}
		return " " + dimStyle.Render("no jobs found")
	}

	var b strings.Builder

	viewChrome := 7 // header + filter bar + separator + pagination + banners
	maxVisible := m.height - viewChrome
	if maxVisible < 3 {
		maxVisible = 3
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(jobs) && i < start+maxVisible; i++ {
		job := jobs[i]

		cursor := "  "
		titleStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			titleStyle = normalStyle.Bold(true)
		}

		dot := CategoryStyle(job.Category.Slug).Render("●") + " "

		// Right-side columns: responsive based on width.
		showSalary := m.width >= 80
		showLocation := m.width >= 60

		var rightParts []string
		rightWidth := 0
		if showLocation {
			loc := truncStr(job.Location, 14)
			rightParts = append(rightParts, metaStyle.Render(fmt.Sprintf("%-14s", loc)))
			rightWidth += 15
		}
		if showSalary {
			sal := job.SalaryRange()
			if sal == "" {
				sal = strings.Repeat(" ", 16)
			} else {
				sal = fmt.Sprintf("%-16s", truncStr(sal, 16))
			}
			rightParts = append(rightParts, salaryStyle.Render(sal))
			rightWidth += 17
		}
		if job.ExperienceLevel != "" {
			rightParts = append(rightParts, LevelBadge(job.ExperienceLevel))
			rightWidth += len(job.ExperienceLevel) + 3
		}
		rightParts = append(rightParts, metaStyle.Render(formatDaysPosted(job.DaysPosted)))
		rightWidth += 7

		titleWidth := m.width - 4 - rightWidth
		if titleWidth < 16 {
			titleWidth = 16
		}
		title := oneLine(job.Title)
		if job.CompanyName != "" {
			title += " · " + job.CompanyName
		}
		title = truncStr(title, titleWidth)
		titlePadded := fmt.Sprintf("%-*s", titleWidth, title)

		line := cursor + dot + titleStyle.Render(titlePadded) + " " + strings.Join(rightParts, " ")
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	// Pagination line
	pager := fmt.Sprintf("page %d", m.engine.CurrentPage())
	if m.engine.TotalCount() > 0 {
		pager += fmt.Sprintf(" · %d total", m.engine.TotalCount())
	}
	if m.engine.HasPrevious() {
		pager += "  " + "[ prev"
	}
	if m.engine.HasNext() {
		pager += "  " + "] next"
	}
	b.WriteString(" " + metaStyle.Render(pager) + "\n")

	return b.String()
}

func (m jobsModel) viewDetail() string {
	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")

	if m.job == nil {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		if m.statusMsg != "" {
			b.WriteString(" " + errorStyle.Render(m.statusMsg) + "\n")
		}
		return truncateToHeight(b.String(), m.height)
	}
	job := m.job

	b.WriteString(" " + selectedStyle.Render(job.Title) + "\n")

	meta := " " + normalStyle.Render(job.CompanyName)
	if job.Location != "" {
		meta += metaStyle.Render(" · ") + metaStyle.Render(job.Location)
	}
	if job.EmploymentType != "" {
		meta += metaStyle.Render(" · ") + metaStyle.Render(job.EmploymentType)
	}
	if job.ExperienceLevel != "" {
		meta += metaStyle.Render(" · ") + LevelBadge(job.ExperienceLevel)
	}
	b.WriteString(meta + "\n")

	info := " " + CategoryStyle(job.Category.Slug).Render(job.Category.Name)
	if sal := job.SalaryRange(); sal != "" {
		info += "  " + salaryStyle.Render(sal)
	}
	if job.ApplicationCount > 0 {
		info += "  " + metaStyle.Render(fmt.Sprintf("%d applicants", job.ApplicationCount))
	}
	if job.ApplicationDeadline != "" {
		info += "  " + metaStyle.Render("closes "+job.ApplicationDeadline)
	}
	b.WriteString(info + "\n\n")

	detailWidth := m.width - 4
	if detailWidth < 40 {
		detailWidth = 40
	}
	for _, section := range []struct{ label, text string }{
		{"", job.Description},
		{"REQUIREMENTS", job.Requirements},
		{"BENEFITS", job.Benefits},
	} {
		if section.text == "" {
			continue
		}
		if section.label != "" {
			b.WriteString(" " + sectionHeaderStyle.Render(section.label) + "\n")
		}
		wrapped := lipgloss.NewStyle().Width(detailWidth).Render(section.text)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(" " + normalStyle.Render(line) + "\n")
		}
		b.WriteString("\n")
	}

	// Cover letter form
	if m.applying {
		b.WriteString(" " + inputPromptStyle.Render("cover letter:") + "\n")
		lines := strings.Split(m.cover, "\n")
		for i, line := range lines {
			if i == len(lines)-1 {
				b.WriteString("   " + normalStyle.Render(line) + accentStyle.Render("█") + "\n")
			} else {
				b.WriteString("   " + normalStyle.Render(line) + "\n")
			}
		}
		if m.submitting {
			b.WriteString("   " + dimStyle.Render("submitting...") + "\n")
		} else {
			b.WriteString("   " + dimStyle.Render("ctrl+s submit · esc cancel") + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
