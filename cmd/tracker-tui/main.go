package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"exercise-tracker/client"
	"exercise-tracker/confs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const requestTimeout = 10 * time.Second

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringUsername step = iota
	stepCreatingUser
	stepEnteringDescription
	stepEnteringDuration
	stepEnteringDate
	stepSendingExercise
	stepShowingLog
)

type userCreatedMsg struct{ user *client.User }
type logLoadedMsg struct {
	exercise *client.Exercise
	log      *client.Log
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type model struct {
	api  *client.Client
	step step

	user         *client.User
	description  string
	duration     string
	currentInput string

	lastExercise *client.Exercise
	log          *client.Log
	message      string
	quitting     bool
}

func initialModel(api *client.Client) model {
	return model{api: api, step: stepEnteringUsername}
}

func (m model) Init() tea.Cmd {
	return nil
}

func createUser(api *client.Client, username string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, err := api.CreateUser(ctx, username)
		if err != nil {
			return errMsg{fmt.Errorf("could not create user: %w", err)}
		}
		return userCreatedMsg{user: user}
	}
}

func addExercise(api *client.Client, userID, description, duration, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		exercise, err := api.AddExercise(ctx, userID, description, duration, date)
		if err != nil {
			return errMsg{fmt.Errorf("could not add exercise: %w", err)}
		}
		log, err := api.GetLog(ctx, userID, client.LogOptions{})
		if err != nil {
			return errMsg{fmt.Errorf("could not load log: %w", err)}
		}
		return logLoadedMsg{exercise: exercise, log: log}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case userCreatedMsg:
		m.user = msg.user
		m.step = stepEnteringDescription
		m.message = successStyle.Render(fmt.Sprintf("Created %s (%s)", msg.user.Username, msg.user.ID))
		return m, nil

	case logLoadedMsg:
		m.lastExercise = msg.exercise
		m.log = msg.log
		m.step = stepShowingLog
		m.message = successStyle.Render(fmt.Sprintf("Logged %s on %s", msg.exercise.Description, msg.exercise.Date))
		return m, nil

	case errMsg:
		m.message = errorStyle.Render(msg.Error())
		if m.user == nil {
			m.step = stepEnteringUsername
		} else {
			m.step = stepEnteringDescription
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}

	if m.step == stepShowingLog {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "enter", "a":
			m.step = stepEnteringDescription
			m.message = ""
		}
		return m, nil
	}

	if m.step == stepCreatingUser || m.step == stepSendingExercise {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.currentInput) > 0 {
			runes := []rune(m.currentInput)
			m.currentInput = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.currentInput += " "
		return m, nil
	case tea.KeyRunes:
		m.currentInput += string(msg.Runes)
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.currentInput)
	m.currentInput = ""

	switch m.step {
	case stepEnteringUsername:
		if input == "" {
			m.message = errorStyle.Render("username cannot be empty")
			return m, nil
		}
		m.step = stepCreatingUser
		m.message = ""
		return m, createUser(m.api, input)

	case stepEnteringDescription:
		if input == "" {
			m.message = errorStyle.Render("description cannot be empty")
			return m, nil
		}
		m.description = input
		m.step = stepEnteringDuration
		m.message = ""

	case stepEnteringDuration:
		if input == "" {
			m.message = errorStyle.Render("duration cannot be empty")
			return m, nil
		}
		m.duration = input
		m.step = stepEnteringDate
		m.message = ""

	case stepEnteringDate:
		m.step = stepSendingExercise
		m.message = ""
		return m, addExercise(m.api, m.user.ID, m.description, m.duration, input)
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Exercise Tracker"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringUsername:
		b.WriteString(prompt("Username", m.currentInput))
	case stepCreatingUser:
		b.WriteString(normalStyle.Render("Creating user..."))
	case stepEnteringDescription:
		b.WriteString(prompt("Description", m.currentInput))
	case stepEnteringDuration:
		b.WriteString(prompt("Duration (minutes)", m.currentInput))
	case stepEnteringDate:
		b.WriteString(prompt("Date (yyyy-mm-dd, empty for today)", m.currentInput))
	case stepSendingExercise:
		b.WriteString(normalStyle.Render("Saving exercise..."))
	case stepShowingLog:
		b.WriteString(renderLog(m.log))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: add another • q: quit"))
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(m.message)
	}
	b.WriteString("\n")
	return b.String()
}

func prompt(label, input string) string {
	return promptStyle.Render(label+": ") + inputStyle.Render(input) + "█"
}

func renderLog(log *client.Log) string {
	if log == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(fmt.Sprintf("%s: %d entries", log.Username, log.Count)))
	b.WriteString("\n")
	for _, entry := range log.Log {
		b.WriteString(normalStyle.Render(fmt.Sprintf("%s  %3d min  %s", entry.Date, entry.Duration, entry.Description)))
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	baseURL := confs.GetEnvAsString("TRACKER_URL", "http://localhost:3000")

	p := tea.NewProgram(initialModel(client.New(baseURL)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
