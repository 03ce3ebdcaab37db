package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// Form field indices.
const (
	fieldPattern = iota
	fieldDirectory
	fieldTitle
	fieldCount
)

// defaultTitle is used when the title field is left blank.
const defaultTitle = "gpdf report"

// defaultContextWindow matches the CLI default.
const defaultContextWindow = 120

// reportDoneMsg is delivered when a report run finishes.
type reportDoneMsg struct {
	result *domain.RunResult
	err    error
}

// App is the report form application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	inputs  []textinput.Model
	focused int

	running bool
	status  string
	isError bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new report form with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	inputs := make([]textinput.Model, fieldCount)

	pattern := textinput.New()
	pattern.Placeholder = "regular expression"
	pattern.CharLimit = 256
	pattern.Width = 48
	pattern.Focus()
	inputs[fieldPattern] = pattern

	directory := textinput.New()
	directory.Placeholder = "directory with PDF files"
	directory.CharLimit = 512
	directory.Width = 48
	inputs[fieldDirectory] = directory

	title := textinput.New()
	title.Placeholder = defaultTitle
	title.CharLimit = 256
	title.Width = 48
	inputs[fieldTitle] = title

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		inputs: inputs,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("gpdf report"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case reportDoneMsg:
		a.running = false
		if msg.err != nil {
			a.status = fmt.Sprintf("Failed: %v", msg.err)
			a.isError = true
			return a, nil
		}
		a.status = fmt.Sprintf("Done. %d matches. Report saved to gpdf_report/", len(msg.result.Records))
		a.isError = false
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down":
			if !a.running {
				a.setFocus((a.focused + 1) % fieldCount)
			}
			return a, nil
		case "shift+tab", "up":
			if !a.running {
				a.setFocus((a.focused + fieldCount - 1) % fieldCount)
			}
			return a, nil
		case "enter":
			if a.running {
				return a, nil
			}
			if a.focused < fieldCount-1 {
				a.setFocus(a.focused + 1)
				return a, nil
			}
			return a, a.submit()
		}
	}

	if a.running {
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("gpdf report"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Search pattern", "Target directory", "Report title (optional)"}
	for i, input := range a.inputs {
		b.WriteString(a.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(a.styles.InputField.Render(input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case a.running:
		b.WriteString(a.styles.Muted.Render("Running... this can take a while."))
	case a.status != "" && a.isError:
		b.WriteString(a.styles.Error.Render(a.status))
	case a.status != "":
		b.WriteString(a.styles.Success.Render(a.status))
	}
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("tab: next field • enter: run report • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (a *App) setFocus(index int) {
	a.inputs[a.focused].Blur()
	a.focused = index
	a.inputs[a.focused].Focus()
}

// submit validates the form and starts the report run.
func (a *App) submit() tea.Cmd {
	pattern := strings.TrimSpace(a.inputs[fieldPattern].Value())
	dir := strings.TrimSpace(a.inputs[fieldDirectory].Value())
	title := strings.TrimSpace(a.inputs[fieldTitle].Value())
	if title == "" {
		title = defaultTitle
	}

	if pattern == "" {
		a.status = "Please enter a search pattern."
		a.isError = true
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		a.status = "Please choose a valid directory."
		a.isError = true
		return nil
	}

	a.running = true
	a.status = ""
	a.isError = false

	opts := domain.RunOptions{
		Pattern:       pattern,
		Paths:         []string{dir},
		ContextWindow: defaultContextWindow,
		Report:        true,
		Title:         title,
		OutputDir:     filepath.Join(dir, "gpdf_report"),
	}
	return func() tea.Msg {
		result, err := a.ports.Grep.Run(a.ctx, opts)
		return reportDoneMsg{result: result, err: err}
	}
}
