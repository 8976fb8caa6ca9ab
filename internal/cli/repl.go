package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zephyrtronium/arith/internal/log"
)

// Repl evaluates expressions typed at a prompt.
type Repl struct {
	Parse parseConfig `embed:""`

	Fmt string `default:"%v" help:"Format verb for results."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, s *Streams) error {
	return runREPL(ctx, s, r.Parse, r.Fmt)
}

const prompt = "➜ "

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runREPL(ctx context.Context, s *Streams, parse parseConfig, verb string) error {
	log.DebugContext(ctx, "repl start", slog.String("fmt", verb))
	p := tea.NewProgram(
		newREPL(ctx, parse, verb),
		tea.WithContext(ctx),
		tea.WithInput(s.In),
		tea.WithOutput(s.Out),
	)
	m, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "repl")
	}
	if m, ok := m.(replModel); ok {
		log.DebugContext(ctx, "repl stop", slog.Int("history", len(m.history)))
	}
	return nil
}

// replModel is the Bubble Tea model of the interactive session.
type replModel struct {
	ctx   context.Context
	parse parseConfig
	verb  string
	input textinput.Model
	// history holds submitted lines, oldest first. hpos indexes the entry
	// shown in the input, or is len(history) when editing a new line.
	history  []string
	hpos     int
	quitting bool
}

func newREPL(ctx context.Context, parse parseConfig, verb string) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.TextStyle = inputStyle
	ti.Placeholder = "1+2*3"
	ti.Width = 72
	ti.Focus()
	return replModel{
		ctx:   ctx,
		parse: parse,
		verb:  verb,
		input: ti,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("enter evaluates, up and down recall, ctrl+d quits") + "\n"
}

// submit evaluates the current line and prints it above the prompt along
// with its result.
func (m replModel) submit() (tea.Model, tea.Cmd) {
	src := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if src == "" {
		return m, nil
	}
	m.history = append(m.history, src)
	m.hpos = len(m.history)
	echo := promptStyle.Render(prompt) + inputStyle.Render(src)
	return m, tea.Println(echo + "\n" + m.answer(src))
}

// answer evaluates src and formats the result or diagnostic.
func (m replModel) answer(src string) string {
	r := m.parse.evaluate(m.ctx, src)
	if r.err != nil {
		var b strings.Builder
		diagnose(&b, src, r.err)
		return errorStyle.Render(strings.TrimSuffix(b.String(), "\n"))
	}
	return resultStyle.Render(fmt.Sprintf(m.verb, r.value))
}

// recall moves through history by d entries.
func (m *replModel) recall(d int) {
	if len(m.history) == 0 {
		return
	}
	m.hpos = min(max(m.hpos+d, 0), len(m.history))
	if m.hpos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.hpos])
	m.input.CursorEnd()
}
