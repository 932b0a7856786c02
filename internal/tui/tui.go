// Package tui renders the opening-hand calculator as a reactive terminal
// form. The three fields are re-evaluated from scratch on every keystroke;
// the model owns only the raw text, never a cached computation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mtoyoda/pokehand/internal/config"
	"github.com/mtoyoda/pokehand/internal/input"
	"github.com/mtoyoda/pokehand/internal/odds"
)

// Field indices into Model.inputs.
const (
	fieldThreshold = iota
	fieldBelow
	fieldAbove
	fieldCount
)

// Model is the Bubble Tea model for the calculator form.
type Model struct {
	logger *log.Logger

	inputs  [fieldCount]textinput.Model
	focused int

	eval     odds.Evaluation
	decimals int
	styles   Styles

	width    int
	height   int
	quitting bool
}

// NewModel creates the calculator form with field defaults taken from the
// configuration.
func NewModel(logger *log.Logger, cfg *config.Config) *Model {
	m := &Model{
		logger:   logger.WithPrefix("tui"),
		decimals: cfg.UI.Decimals,
		styles:   DefaultStyles(),
	}

	placeholders := [fieldCount]string{"70", "7", "5"}
	values := [fieldCount]string{
		cfg.Defaults.HpThreshold,
		cfg.Defaults.BelowCount,
		cfg.Defaults.AboveCount,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 10
		ti.Width = 10
		ti.Prompt = "> "
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldThreshold].Focus()

	m.refresh()
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Any edit to a field triggers a full
// re-evaluation; there is no incremental state to get stale.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "enter", "down":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.refresh()
	return m, cmd
}

// focusField moves focus to the given field.
func (m *Model) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// refresh recomputes the evaluation from the current raw field values.
func (m *Model) refresh() {
	m.eval = odds.Evaluate(
		m.inputs[fieldThreshold].Value(),
		m.inputs[fieldBelow].Value(),
		m.inputs[fieldAbove].Value(),
	)
	m.logger.Debug("recomputed",
		"threshold", m.inputs[fieldThreshold].Value(),
		"below", m.inputs[fieldBelow].Value(),
		"above", m.inputs[fieldAbove].Value(),
		"probability", m.eval.Prob)
}

// Evaluation returns the result of the most recent recompute.
func (m *Model) Evaluation() odds.Evaluation {
	return m.eval
}

// View renders the form.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(" Opening-hand odds — 60-card deck "))
	b.WriteString("\n\n")

	labels := [fieldCount]string{
		"Max HP of a weak Basic",
		m.belowLabel(),
		m.aboveLabel(),
	}
	errs := [fieldCount]input.Error{
		m.eval.Threshold.Err,
		m.eval.Below.Err,
		m.eval.Above.Err,
	}

	for i := range m.inputs {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("%-34s", labels[i])))
		b.WriteString(m.inputs[i].View())
		if errs[i] != input.None {
			b.WriteString("  ")
			b.WriteString(m.styles.Error.Render(errs[i].String()))
		}
		b.WriteString("\n")
	}

	if m.eval.TotalErr != input.None {
		b.WriteString(m.styles.Error.Render(m.eval.TotalErr.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Box.Render(m.renderResult()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("Tab/Enter next field • Shift+Tab previous • Esc to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderResult renders the result pane: the derived category size and the
// probability, or a placeholder while any field is invalid.
func (m *Model) renderResult() string {
	var b strings.Builder

	b.WriteString(m.styles.Detail.Render(
		fmt.Sprintf("Other cards in deck: %d", m.eval.Other)))
	b.WriteString("\n")
	b.WriteString("Chance of exactly one weak Basic: ")
	b.WriteString(m.styles.Result.Render(m.eval.FormatPercentPrec(m.decimals)))

	if !m.eval.Valid() {
		b.WriteString("\n")
		b.WriteString(m.styles.Detail.Render("fix the inputs above to see the result"))
	}

	return b.String()
}

// belowLabel parameterizes the target-category label with the threshold
// when it parses; the computation is independent of it either way.
func (m *Model) belowLabel() string {
	if t := m.eval.Threshold; t.Err == input.None {
		return fmt.Sprintf("Basic Pokémon with HP ≤ %d", t.Value)
	}
	return "Basic Pokémon at or below the HP cap"
}

func (m *Model) aboveLabel() string {
	if t := m.eval.Threshold; t.Err == input.None {
		return fmt.Sprintf("Basic Pokémon with HP > %d", t.Value)
	}
	return "Basic Pokémon above the HP cap"
}
