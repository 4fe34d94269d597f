package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunProgress reports per-environment progress of a run
type RunProgress struct {
	splog *Splog
	total int
}

// NewRunProgress creates a progress reporter over the given logger
func NewRunProgress(splog *Splog, total int) *RunProgress {
	return &RunProgress{splog: splog, total: total}
}

// StartEnv announces that an environment is about to run
func (p *RunProgress) StartEnv(idx int, name string) {
	p.splog.Info("%s run %s (%d of %d)", ColorCyan("▶"), ColorEnvName(name, idx), idx+1, p.total)
}

// EnvDone reports the outcome of one environment
func (p *RunProgress) EnvDone(idx int, name string, exitCode int) {
	if exitCode == 0 {
		p.splog.Info("%s %s passed", ColorGreen("✓"), ColorEnvName(name, idx))
		return
	}
	p.splog.Info("%s %s failed with exit code %d", ColorRed("✗"), ColorEnvName(name, idx), exitCode)
}

// Complete prints the run summary
func (p *RunProgress) Complete(passed, failed int) {
	p.splog.Newline()
	if failed > 0 {
		p.splog.Info("%s Completed: %d, Failed: %d", ColorYellow("⚠"), passed, failed)
		return
	}
	p.splog.Info("%s All %d environments passed", ColorGreen("✓"), passed)
}

// spinnerDoneMsg carries the result of the background work
type spinnerDoneMsg struct {
	err error
}

// spinnerModel shows a spinner with a label while work runs in the background
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
	err     error
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return spinnerModel{spinner: s, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			m.err = fmt.Errorf("canceled")
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// RunWithSpinner runs fn while showing a spinner with the given label.
// Without a TTY the function simply runs after a plain log line.
func RunWithSpinner(splog *Splog, label string, fn func() error) error {
	if !IsTTY() {
		splog.Info("%s...", label)
		return fn()
	}

	// The spinner owns the terminal while it runs
	prev := splog.IsQuiet()
	splog.SetQuiet(true)
	defer splog.SetQuiet(prev)

	m := newSpinnerModel(label)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	go func() {
		p.Send(spinnerDoneMsg{err: fn()})
	}()

	result, err := p.Run()
	if err != nil {
		return err
	}
	if final, ok := result.(spinnerModel); ok && final.err != nil {
		return final.err
	}
	return nil
}
