package tui

import (
	"context"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

type loginField int

const (
	fieldUsername loginField = iota
	fieldPassword
	fieldEmail    // register only
	fieldFullName // register only
	numLoginFields
)

// -- messages --

type loginResultMsg struct {
	user *domain.User
	err  error
}

type registerResultMsg struct{ err error }

// -- model --

type loginModel struct {
	client     *client.Client
	mode       loginMode
	fields     [numLoginFields]string
	focus      loginField
	rememberMe bool
	submitting bool // locked while a request is in flight
	notice     string
	errMsg     string
	fieldErrs  map[string][]string
	width      int
	height     int
}

func newLoginModel(c *client.Client) loginModel {
	return loginModel{client: c, rememberMe: true}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

// setNotice shows an informational line above the form, e.g. after a
// forced logout.
func (m loginModel) setNotice(text string) loginModel {
	m.notice = text
	return m
}

func (m loginModel) fieldCount() loginField {
	if m.mode == modeRegister {
		return numLoginFields
	}
	return fieldEmail // login shows username + password only
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = client.Humanize(msg.err)
			m.fieldErrs = client.FieldErrors(msg.err)
			return m, nil
		}
		// App watches the same message to switch views.
		return m, nil

	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = client.Humanize(msg.err)
			m.fieldErrs = client.FieldErrors(msg.err)
			return m, nil
		}
		// Account created; drop back to login with credentials kept.
		m.mode = modeLogin
		m.focus = fieldUsername
		m.notice = "account created — sign in"
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.errMsg = ""
	m.fieldErrs = nil

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % m.fieldCount()
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
	case "ctrl+r":
		if m.mode == modeLogin {
			m.mode = modeRegister
		} else {
			m.mode = modeLogin
		}
		m.focus = fieldUsername
		m.notice = ""
	case "ctrl+t":
		m.rememberMe = !m.rememberMe
	case "enter":
		if m.focus+1 < m.fieldCount() {
			m.focus++
			return m, nil
		}
		return m.submit()
	default:
		key := msg.String()
		if key == "backspace" || len(key) == 1 {
			m.fields[m.focus] = editRune(m.fields[m.focus], key)
		}
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := strings.TrimSpace(m.fields[fieldUsername])
	password := m.fields[fieldPassword]
	if username == "" || password == "" {
		m.errMsg = "username and password required"
		return m, nil
	}

	m.submitting = true
	c := m.client

	if m.mode == modeRegister {
		req := client.RegisterRequest{
			Username: username,
			Password: password,
			Email:    strings.TrimSpace(m.fields[fieldEmail]),
			FullName: strings.TrimSpace(m.fields[fieldFullName]),
		}
		return m, func() tea.Msg {
			err := c.Register(context.Background(), req)
			return registerResultMsg{err: err}
		}
	}

	remember := m.rememberMe
	return m, func() tea.Msg {
		user, err := c.Login(context.Background(), username, password, remember)
		return loginResultMsg{user: user, err: err}
	}
}

var loginFieldLabels = [numLoginFields]string{"username", "password", "email", "full name"}

func (m loginModel) View() string {
	var b strings.Builder

	title := "SIGN IN"
	if m.mode == modeRegister {
		title = "CREATE ACCOUNT"
	}
	b.WriteString("\n " + sectionHeaderStyle.Render("── "+title+" ──") + "\n\n")

	if m.notice != "" {
		b.WriteString(" " + okStyle.Render(m.notice) + "\n\n")
	}

	for f := loginField(0); f < m.fieldCount(); f++ {
		label := inputPromptStyle.Render(loginFieldLabels[f] + ":")
		value := m.fields[f]
		if f == fieldPassword {
			value = strings.Repeat("*", len([]rune(value)))
		}

		if f == m.focus && !m.submitting {
			b.WriteString("   " + accentStyle.Render(">") + " " + label + " " + value + accentStyle.Render("█") + "\n")
		} else {
			b.WriteString("     " + label + " " + dimStyle.Render(value) + "\n")
		}

		// Inline field errors under the offending input.
		if msgs, ok := m.fieldErrs[strings.ReplaceAll(loginFieldLabels[f], " ", "_")]; ok {
			for _, msg := range msgs {
				b.WriteString("       " + errorStyle.Render(msg) + "\n")
			}
		}
	}

	if m.mode == modeLogin {
		check := "[ ]"
		if m.rememberMe {
			check = "[x]"
		}
		b.WriteString("     " + dimStyle.Render(check+" remember me") + " " + helpKeyStyle.Render("ctrl+t") + "\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	}
	// Field errors not tied to a visible input still need a home.
	for _, key := range orphanFieldErrKeys(m.fieldErrs, m.fieldCount()) {
		for _, msg := range m.fieldErrs[key] {
			b.WriteString(" " + errorStyle.Render(key+": "+msg) + "\n")
		}
	}

	if m.submitting {
		b.WriteString(" " + dimStyle.Render("signing in...") + "\n")
	} else if m.mode == modeLogin {
		b.WriteString(" " + dimStyle.Render("enter submit · ctrl+r register instead") + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("enter submit · ctrl+r back to sign in") + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

// orphanFieldErrKeys returns field-error keys that don't match any
// rendered input, sorted for stable output.
func orphanFieldErrKeys(fieldErrs map[string][]string, count loginField) []string {
	if len(fieldErrs) == 0 {
		return nil
	}
	shown := map[string]bool{}
	for f := loginField(0); f < count; f++ {
		shown[strings.ReplaceAll(loginFieldLabels[f], " ", "_")] = true
	}
	var out []string
	for key := range fieldErrs {
		if !shown[key] {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
