package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobdeck/jobdeck/internal/browser"
	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
	"github.com/jobdeck/jobdeck/pkg/session"
)

type view int

const (
	viewLogin view = iota
	viewJobs
	viewCandidates
	viewDashboard
	viewYou
)

// AuthExpiredMsg is sent from outside the update loop when a token
// refresh fails for good; the app routes back to the login form.
type AuthExpiredMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client     *client.Client
	view       view
	login      loginModel
	jobs       jobsModel
	candidates candidatesModel
	dash       dashModel
	you        youModel
	helpOpen   bool
	helpCursor int
	user       *domain.User
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates a new TUI application. A hydrated, authenticated
// session skips the login form.
func NewApp(c *client.Client) App {
	a := App{
		client:     c,
		login:      newLoginModel(c),
		jobs:       newJobsModel(c),
		candidates: newCandidatesModel(c),
		dash:       newDashModel(c),
		you:        newYouModel(c),
	}
	if c != nil && c.Session() != nil && c.Session().State() == session.Authenticated {
		a.view = viewJobs
		a.user = c.Session().User()
		a.you.user = a.user
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	if a.view == viewJobs {
		cmds = append(cmds, a.jobs.Init(), a.you.Init())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.login, _ = a.login.Update(bodyMsg)
		a.jobs, _ = a.jobs.Update(bodyMsg)
		a.candidates, _ = a.candidates.Update(bodyMsg)
		a.dash, _ = a.dash.Update(bodyMsg)
		a.you, _ = a.you.Update(bodyMsg)

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case AuthExpiredMsg:
		a.user = nil
		a.view = viewLogin
		a.login = newLoginModel(a.client).setNotice("session expired — sign in again")
		return a, nil

	case loginResultMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		if msg.err == nil && msg.user != nil {
			a.user = msg.user
			a.you.user = msg.user
			a.view = viewJobs
			return a, tea.Batch(a.jobs.Init(), a.you.Init())
		}
		return a, cmd

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keys (only when not editing, and past the login gate)
		if !a.isEditing() && a.view != viewLogin {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q":
				return a, tea.Quit
			case "1":
				if a.view != viewJobs {
					a.view = viewJobs
					return a, a.jobs.Init()
				}
				return a, nil
			case "2":
				if a.view != viewCandidates {
					a.view = viewCandidates
					return a, a.candidates.Init()
				}
				return a, nil
			case "3":
				if a.view != viewDashboard {
					a.view = viewDashboard
					return a, a.dash.Init()
				}
				return a, nil
			case "4":
				if a.view != viewYou {
					a.view = viewYou
					return a, a.you.Init()
				}
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewJobs:
		a.jobs, cmd = a.jobs.Update(msg)
	case viewCandidates:
		a.candidates, cmd = a.candidates.Update(msg)
	case viewDashboard:
		a.dash, cmd = a.dash.Update(msg)
	case viewYou:
		a.you, cmd = a.you.Update(msg)
	}

	return a, cmd
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin:
		return true
	case viewJobs:
		return a.jobs.editing || a.jobs.editingLoc || a.jobs.applying
	case viewCandidates:
		return a.candidates.editing
	case viewYou:
		return a.you.state != psNormal
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	// Identity line below logo
	statsLine := ""
	if a.user != nil {
		parts := []string{a.user.DisplayName()}
		if a.you.stats != nil {
			parts = append(parts, fmt.Sprintf("%d views", a.you.stats.TotalViews))
			parts = append(parts, fmt.Sprintf("%d applications", a.you.stats.TotalApplications))
		}
		statsLine = metaStyle.Render(strings.Join(parts, " · "))
	}

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	if statsLine != "" {
		statsWidth := lipgloss.Width(statsLine)
		statsPad := (a.width - statsWidth) / 2
		if statsPad < 0 {
			statsPad = 0
		}
		header += "\n" + strings.Repeat(" ", statsPad) + statsLine
	} else {
		header += "\n"
	}

	// Tab bar: 1 Jobs  2 Candidates  3 Dashboard  4 You
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Jobs", viewJobs},
		{"2", "Candidates", viewCandidates},
		{"3", "Dashboard", viewDashboard},
		{"4", "You", viewYou},
	}

	var centeredTabs string
	if a.view == viewLogin {
		centeredTabs = ""
	} else {
		colWidth := a.width / len(tabs)
		var tabBar strings.Builder
		for _, t := range tabs {
			var label string
			if t.v == a.view {
				label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
			} else {
				label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
			}
			labelWidth := lipgloss.Width(label)
			leftPad := (colWidth - labelWidth) / 2
			if leftPad < 0 {
				leftPad = 0
			}
			rightPad := colWidth - labelWidth - leftPad
			if rightPad < 0 {
				rightPad = 0
			}
			tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
		}
		centeredTabs = tabBar.String()
	}

	// Body
	var body string
	var help string
	switch a.view {
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+r", "mode") + "  " + helpEntry("ctrl+c", "quit")
	case viewJobs:
		body = a.jobs.View()
		switch {
		case a.jobs.applying:
			help = " " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
		case a.jobs.detail:
			help = " " + helpEntry("a", "apply") + "  " + helpEntry("c", "copy") + "  " + helpEntry("esc", "back")
		default:
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("c/e/f", "filters") + "  " + helpEntry("[/]", "pages") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
		}
	case viewCandidates:
		body = a.candidates.View()
		if a.candidates.detail {
			help = " " + helpEntry("o", "open link") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("e", "level") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
		}
	case viewDashboard:
		body = a.dash.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + helpEntry("r", "reload") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewYou:
		body = a.you.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + a.you.helpKeys()
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Chrome: header(2) + tabs(1) + help(1) = 4 lines + body
	chrome := 4
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, centeredTabs, body, help)
}
