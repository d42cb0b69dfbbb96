package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is a LineReader for interactive terminals. Each call runs a
// short bubbletea program with a single text input, then echoes the prompt
// and the accepted answer so the transcript stays on screen.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal returns a LineReader that drives a TUI prompt on in/out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// ReadLine runs a one-field TUI prompt and returns the entered text.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	p := tea.NewProgram(newLineModel(prompt), tea.WithInput(t.in), tea.WithOutput(t.out))
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	final, ok := result.(lineModel)
	if !ok || !final.done {
		return "", ErrClosed
	}
	value := final.input.Value()
	fmt.Fprintf(t.out, "%s%s\n", prompt, value)
	return value, nil
}

// lineModel is a bubbletea model that reads one line.
type lineModel struct {
	input textinput.Model
	done  bool
}

func newLineModel(prompt string) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 512
	ti.Focus()
	return lineModel{input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View() + "\n"
}
