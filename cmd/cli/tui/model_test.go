package tui

import (
	"errors"
	"strings"
	"testing"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
)

type fakeExec struct {
	lines []string
}

func (f *fakeExec) Exec(line string) (string, error) {
	f.lines = append(f.lines, line)
	if strings.HasPrefix(line, "/boom") {
		return "", errors.New("boom")
	}
	return "out:" + line, nil
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.textInput.SetValue(line)
	next, _ := m.Update(bubbletea.KeyMsg{Type: bubbletea.KeyEnter})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_Commands(t *testing.T) {
	exec := &fakeExec{}
	m := NewModel(exec, config.Config{Size: 4}, nil)
	next, _ := m.Update(bubbletea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	require.True(t, m.ready)

	m = typeLine(t, m, "/query 3")
	m = typeLine(t, m, "/state")
	m = typeLine(t, m, "/boom")
	m = typeLine(t, m, "query 3")
	m = typeLine(t, m, "/help")

	assert.Equal(t, []string{"/query 3", "/dump", "/boom"}, exec.lines)

	history := strings.Join(m.history, "\n")
	assert.Contains(t, history, "out:/query 3")
	assert.Contains(t, history, "out:/dump")
	assert.Contains(t, history, "error: boom")
	assert.Contains(t, history, "commands start with /")
	assert.Contains(t, history, "/range a b v")
	assert.Empty(t, m.textInput.Value())
}

func TestModel_Logs(t *testing.T) {
	logs := make(chan string, 1)
	m := NewModel(&fakeExec{}, config.Config{Size: 4}, logs)

	logs <- "level=INFO msg=hello\n"
	msg := waitForLog(logs)()
	next, cmd := m.Update(msg)
	m = next.(Model)

	assert.NotNil(t, cmd)
	require.Len(t, m.history, 1)
	assert.Contains(t, m.history[0], "msg=hello")
}

func TestChannelWriter(t *testing.T) {
	ch := make(chan string, 1)
	w := &ChannelWriter{Ch: ch}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", <-ch)
}
