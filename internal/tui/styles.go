package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the JOBDECK logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "J O B D E C K" as a flowing wave of blue light.
// Deep navy (#16294a) -> bright sky (#60a5fa). No hue drift.
func renderShimmerLogo(frame int) string {
	const text = "JOBDECK"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep navy -> bright sky
		// Deep:   (22, 41, 74)    #16294a
		// Bright: (96, 165, 250)  #60a5fa
		r := clampByte(22 + b*(96-22))
		g := clampByte(41 + b*(165-41))
		bl := clampByte(74 + b*(250-74))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles, jobdeck neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Search / accent
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b82f6"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d474"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	salaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3b82f6")).
				Bold(true)

	// Selected row background
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Category colors: stable accents per category slug
	categoryColors = map[string]lipgloss.Color{
		"engineering":      lipgloss.Color("#60a0e0"),
		"design":           lipgloss.Color("#c084e0"),
		"marketing":        lipgloss.Color("#f0944a"),
		"sales":            lipgloss.Color("#d4a844"),
		"finance":          lipgloss.Color("#3ecce4"),
		"healthcare":       lipgloss.Color("#e06060"),
		"education":        lipgloss.Color("#b080d0"),
		"data-science":     lipgloss.Color("#43e88c"),
		"devops":           lipgloss.Color("#f0944a"),
		"product":          lipgloss.Color("#d05050"),
		"customer-support": lipgloss.Color("#8890a0"),
		"operations":       lipgloss.Color("#606878"),
	}

	// Experience level colors, entry through expert
	levelColors = map[string]lipgloss.Color{
		"entry":  lipgloss.Color("#43e88c"),
		"mid":    lipgloss.Color("#3ecce4"),
		"senior": lipgloss.Color("#d4a844"),
		"expert": lipgloss.Color("#c084e0"),
	}
)

// CategoryStyle returns a bold style colored for the given category slug.
func CategoryStyle(slug string) lipgloss.Style {
	if c, ok := categoryColors[slug]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// LevelStyle returns a bold style colored for the given experience level.
func LevelStyle(level string) lipgloss.Style {
	if c, ok := levelColors[level]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// LevelBadge returns a short colored badge for an experience level,
// e.g. "[senior]".
func LevelBadge(level string) string {
	if level == "" {
		return ""
	}
	return LevelStyle(level).Render("[" + level + "]")
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Browse Jobs", "jobdeck.dev/jobs", "https://jobdeck.dev/jobs"},
	{"Privacy Policy", "jobdeck.dev/privacy", "https://jobdeck.dev/privacy"},
	{"FAQ", "jobdeck.dev/faq", "https://jobdeck.dev/faq"},
	{"Website", "jobdeck.dev", "https://jobdeck.dev"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true).
		Render("J O B D E C K")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("The job board, without leaving the terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"jobdeck", "Open the board (interactive TUI)"},
		{"jobdeck whoami", "Show the signed-in account"},
		{"jobdeck logout", "Clear your session"},
		{"jobdeck --version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, tagline)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
