package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jobdeck/jobdeck/internal/tui"
	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// apiURL resolves the backend base URL: env var over the local default.
func apiURL() string {
	if u := os.Getenv("JOBDECK_API_URL"); u != "" {
		return u
	}
	return "http://127.0.0.1:8000"
}

// sessionPath resolves where credentials live: env var over ~/.jobdeck.
func sessionPath() (string, error) {
	if p := os.Getenv("JOBDECK_SESSION_FILE"); p != "" {
		return p, nil
	}
	return session.DefaultPath()
}

func run() error {
	godotenv.Load() //nolint:errcheck // a missing .env is fine

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("jobdeck " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "whoami":
			return runWhoami()
		case "logout":
			return runLogout()
		}
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	c := client.New(apiURL(), sess)
	app := tui.NewApp(c)

	p := tea.NewProgram(app, tea.WithAltScreen())
	c.OnAuthExpired(func() {
		p.Send(tui.AuthExpiredMsg{})
	})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// openSession binds and hydrates the session store. A corrupt session
// file is reported but still yields a usable anonymous store.
func openSession() (*session.Store, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	sess := session.Open(path)
	if err := sess.Hydrate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (starting signed out)\n", err)
	}
	return sess, nil
}

func runWhoami() error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	user := sess.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s", user.Username)
	if user.Email != "" {
		fmt.Printf(" <%s>", user.Email)
	}
	fmt.Println()
	return nil
}

func runLogout() error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	if _, status := sess.AccessToken(); status != session.TokenPresent {
		fmt.Println("Already signed out.")
		return nil
	}
	// Best-effort server-side logout, unconditional local clear.
	c := client.New(apiURL(), sess)
	if err := c.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func printHelp() {
	fmt.Print(`jobdeck — a terminal job-board client

Usage:
  jobdeck            open the board (interactive TUI)
  jobdeck whoami     show the signed-in account
  jobdeck logout     clear your session
  jobdeck version    show version

Environment:
  JOBDECK_API_URL       backend base URL (default http://127.0.0.1:8000)
  JOBDECK_SESSION_FILE  session file path (default ~/.jobdeck/session.json)

Keys inside the TUI:
  1-4        switch tabs
  j/k        move cursor
  /          search
  h          help overlay
  q          quit
`)
}
