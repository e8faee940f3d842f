// Package tui is the interactive terminal page of passgen: option toggles,
// a length control, the generated password with its strength meter, and the
// session history.
package tui

import (
	"context"
	"errors"
	"fmt"
	"passgen/internal/session"
	"passgen/pkg/domain"
	"passgen/pkg/logger"
	"passgen/pkg/serrors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// copiedFor is how long the "Copied!" notice stays on screen.
const copiedFor = 1400 * time.Millisecond

// historyRows caps the history lines rendered; the session keeps everything.
const historyRows = 10

type generateMsg struct{}

// clearStatusMsg clears the status line unless a newer status replaced it.
type clearStatusMsg struct{ seq int }

// Model is the bubbletea model of the page.
type Model struct {
	ctx     context.Context
	session *session.Session
	theme   Theme
	meters  map[domain.Strength]progress.Model

	current *domain.Password

	status    string
	statusErr bool
	statusSeq int

	quitting bool
}

// New creates the page over s. ctx scopes logging and metrics of every action.
func New(ctx context.Context, s *session.Session) Model {
	return Model{
		ctx:     ctx,
		session: s,
		theme:   DefaultTheme,
		meters:  DefaultTheme.meters(),
	}
}

// Init generates the first password.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return generateMsg{} }
}

// Update handles key presses and internal messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generateMsg:
		return m.generate()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit
	case "1":
		m.toggle(func(o *domain.CharsetOptions) { o.IncludeLower = !o.IncludeLower })
	case "2":
		m.toggle(func(o *domain.CharsetOptions) { o.IncludeUpper = !o.IncludeUpper })
	case "3":
		m.toggle(func(o *domain.CharsetOptions) { o.IncludeNumbers = !o.IncludeNumbers })
	case "4":
		m.toggle(func(o *domain.CharsetOptions) { o.IncludeSymbols = !o.IncludeSymbols })
	case "a":
		m.toggle(func(o *domain.CharsetOptions) { o.ExcludeAmbiguous = !o.ExcludeAmbiguous })
	case "r":
		m.toggle(func(o *domain.CharsetOptions) { o.ReadabilityFilter = !o.ReadabilityFilter })
	case "+", "=", "up":
		m.toggle(func(o *domain.CharsetOptions) { o.Length++ })
	case "-", "down":
		// Normalize would turn 0 into the default length
		m.toggle(func(o *domain.CharsetOptions) { o.Length = max(domain.MinLength, o.Length-1) })
	case "g", "enter":
		return m.generate()
	case "R":
		return m.regenerate()
	case "c":
		return m.copy()
	case "d":
		return m.download()
	}

	return m, nil
}

func (m *Model) toggle(change func(o *domain.CharsetOptions)) {
	_, _ = m.session.UpdateOptions(func(o *domain.CharsetOptions) error {
		change(o)

		return nil
	})
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	pw, err := m.session.Generate(m.ctx)
	if err != nil {
		return m.fail(err)
	}
	m.current = pw
	m.status = ""

	return m, nil
}

func (m Model) regenerate() (tea.Model, tea.Cmd) {
	pw, err := m.session.Regenerate(m.ctx)
	if err != nil {
		return m.fail(err)
	}
	if pw != nil {
		m.current = pw
		m.status = ""
	}

	return m, nil
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	if err := m.session.Copy(m.ctx); err != nil {
		return m.fail(err)
	}

	return m.notice("Copied!", true)
}

func (m Model) download() (tea.Model, tea.Cmd) {
	if err := m.session.Download(m.ctx); err != nil {
		return m.fail(err)
	}

	return m.notice("Saved "+session.DownloadName, false)
}

func (m Model) notice(text string, flash bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = false
	if !flash {
		return m, nil
	}

	seq := m.statusSeq

	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	if serrors.KindOf(err) == serrors.ErrInternal {
		logger.Error(m.ctx, "action failed", zap.Error(err))
	}
	m.statusSeq++
	m.status = capitalize(serrors.UserMessage(err))
	m.statusErr = true

	return m, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// View renders the page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	t := m.theme

	b.WriteString(t.titleStyle().Render("passgen"))
	b.WriteString("\n\n")

	opts := m.session.Options()
	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		checkbox("1", "lowercase", opts.IncludeLower),
		checkbox("2", "uppercase", opts.IncludeUpper),
		checkbox("3", "numbers", opts.IncludeNumbers),
		checkbox("4", "symbols", opts.IncludeSymbols))
	fmt.Fprintf(&b, "%s  %s  length %d\n\n",
		checkbox("a", "exclude ambiguous", opts.ExcludeAmbiguous),
		checkbox("r", "readable", opts.ReadabilityFilter),
		opts.Length)

	if m.current != nil {
		score := m.current.Score
		b.WriteString(t.passwordStyle().Render(m.current.Value))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%.1f bits  %s  %s\n", score.Bits, m.meters[score.Strength].ViewAs(score.Percent()/100), score.Strength)
	}

	b.WriteString("\n")
	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(t.errorStyle().Render(m.status))
	default:
		b.WriteString(t.statusStyle().Render(m.status))
	}
	b.WriteString("\n")

	if history := m.session.History(); len(history) > 0 {
		b.WriteString("\nHistory\n")
		for i, pw := range history {
			if i == historyRows {
				fmt.Fprintf(&b, "  … %d more\n", len(history)-historyRows)

				break
			}
			fmt.Fprintf(&b, "  %s\n", pw.Value)
		}
	}

	b.WriteString("\n")
	b.WriteString(t.hintStyle().Render("g generate • R regenerate • c copy • d download • +/- length • q quit"))
	b.WriteString("\n")

	return b.String()
}

func checkbox(key, label string, on bool) string {
	mark := " "
	if on {
		mark = "x"
	}

	return fmt.Sprintf("[%s] %s %s", mark, key, label)
}

// Run shows the page until the user quits or ctx is cancelled.
func Run(ctx context.Context, s *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(ctx, s), opts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}
