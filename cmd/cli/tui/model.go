package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
)

var cmdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66ff"))
var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
var logStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

const helpText = `Commands:
  /update i v     add v to A[i]
  /range a b v    add v to A[a..b] (range mode)
  /set i v        assign A[i] = v (point mode)
  /scale k        multiply every element by k (point mode)
  /query i        prefix sum A[1..i]
  /single i       A[i]
  /sum a b        A[a] + ... + A[b]
  /find c         greatest i with prefix sum <= c (point mode)
  /dump           internal slots, prefix sums and values
  /check          compare with the reference array
  /state          same as /dump
  /help           this text`

// Executor runs one command; processing.Processor implements it.
type Executor interface {
	Exec(line string) (string, error)
}

type logMsg string

type Model struct {
	exec      Executor
	cfg       config.Config
	logs      <-chan string
	viewport  viewport.Model
	textInput textinput.Model
	history   []string
	ready     bool
}

func NewModel(exec Executor, cfg config.Config, logs <-chan string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command... (/help)"
	ti.Focus()
	ti.Width = 80

	return Model{
		exec:      exec,
		cfg:       cfg,
		logs:      logs,
		textInput: ti,
		history:   []string{},
	}
}

func waitForLog(logs <-chan string) bubbletea.Cmd {
	if logs == nil {
		return nil
	}
	return func() bubbletea.Msg {
		line, ok := <-logs
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

func (m Model) Init() bubbletea.Cmd {
	return bubbletea.Batch(textinput.Blink, waitForLog(m.logs))
}

func (m *Model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	if m.ready {
		m.viewport.SetContent(strings.Join(m.history, "\n"))
		m.viewport.GotoBottom()
	}
}

// run executes a typed line and records it with its output.
func (m *Model) run(input string) {
	command := strings.Fields(input)[0]

	switch command {
	case "/help":
		m.appendHistory(cmdStyle.Render(input), helpText)
		return
	case "/state":
		input = "/dump"
	}
	if !strings.HasPrefix(command, "/") {
		m.appendHistory(cmdStyle.Render(input), errStyle.Render("commands start with /, try /help"))
		return
	}

	out, err := m.exec.Exec(input)
	if err != nil {
		m.appendHistory(cmdStyle.Render(input), errStyle.Render(fmt.Sprintf("error: %v", err)))
		return
	}
	m.appendHistory(cmdStyle.Render(input), out)
}

func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var (
		cmd  bubbletea.Cmd
		cmds []bubbletea.Cmd
	)

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case logMsg:
		m.appendHistory(logStyle.Render(strings.TrimRight(string(msg), "\n")))
		cmds = append(cmds, waitForLog(m.logs))
	case bubbletea.KeyMsg:
		switch msg.Type {
		case bubbletea.KeyEnter:
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			if input == "" {
				return m, nil
			}
			m.run(input)
		case bubbletea.KeyCtrlC, bubbletea.KeyEsc:
			return m, bubbletea.Quit
		}
	case bubbletea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		viewportHeight := max(msg.Height-headerHeight-footerHeight-1, 5)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
			m.viewport.SetContent(strings.Join(m.history, "\n"))
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.textInput.Width = msg.Width - 4
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, bubbletea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	return style.Render(fmt.Sprintf("Fenwick TUI  kind=%s mode=%s size=%d", m.cfg.Kind, m.cfg.Mode, m.cfg.Size))
}

func (m Model) footerView() string {
	return m.textInput.View()
}
