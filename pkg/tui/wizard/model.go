// Package wizard is the terminal front-end for the entry wizard: a centered
// modal that walks the user through the five steps and records the task.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/tui/theme"
	flow "tableflip.dev/unload/pkg/wizard"
)

// SlideStep is how far left/right moves the control slider.
const SlideStep = 5

type rowKind int

const (
	rowOption rowKind = iota
	rowText
)

// row is one selectable line of the current step.
type row struct {
	kind        rowKind
	label       string
	checked     bool
	text        string
	placeholder string
	toggle      func()
	set         func(string)
}

// Model drives a flow.Machine from key presses.
type Model struct {
	machine *flow.Machine
	adder   flow.Adder
	ctx     context.Context
	theme   theme.Theme

	cursor int
	input  textinput.Model
	digits string

	width  int
	height int

	result *flow.Result
	err    error
}

// New returns a model recording through adder.
func New(ctx context.Context, adder flow.Adder) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 280
	m := &Model{
		machine: flow.New(),
		adder:   adder,
		ctx:     ctx,
		theme:   theme.Default(),
		input:   in,
	}
	m.syncInput()
	return m
}

// Machine exposes the underlying state machine.
func (m *Model) Machine() *flow.Machine { return m.machine }

// Result returns the recorded task once the wizard finished.
func (m *Model) Result() (flow.Result, bool) {
	if m.result == nil {
		return flow.Result{}, false
	}
	return *m.result, true
}

// Err is the last error reported by the adder.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.syncInput()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// SetSize stores the available viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := m.idealModalWidth(width) - 16
	if w < 12 {
		w = 12
	}
	m.input.SetWidth(w)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+c":
		m.machine.Cancel()
		return tea.Quit
	case "esc":
		m.machine.Cancel()
		return tea.Quit
	}

	if m.machine.Step() == flow.StepResult {
		switch key {
		case "enter", "q":
			return tea.Quit
		}
		return nil
	}

	switch key {
	case "ctrl+b":
		m.machine.Back()
		m.cursor = 0
		m.digits = ""
		if m.machine.Step() == flow.Cancelled {
			return tea.Quit
		}
		return m.syncInput()
	case "up", "shift+tab":
		return m.move(-1)
	case "down", "tab":
		return m.move(1)
	case "enter":
		return m.advance()
	}

	if m.machine.Step() == flow.StepControl {
		m.handleControlKey(key)
		return nil
	}

	rows := m.rows()
	if m.cursor >= len(rows) {
		return nil
	}
	r := rows[m.cursor]
	if r.kind == rowText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		r.set(m.input.Value())
		return cmd
	}
	switch key {
	case "space", " ", "x":
		r.toggle()
		// a toggle may add or remove a text row below the cursor
		if rows := m.rows(); m.cursor >= len(rows) {
			m.cursor = len(rows) - 1
		}
	}
	return nil
}

func (m *Model) handleControlKey(key string) {
	switch key {
	case "left", "h":
		m.digits = ""
		m.machine.Nudge(-SlideStep)
	case "right", "l":
		m.digits = ""
		m.machine.Nudge(SlideStep)
	case "backspace":
		if m.digits != "" {
			m.digits = m.digits[:len(m.digits)-1]
			if v, err := strconv.Atoi(m.digits); err == nil {
				m.machine.SetControl(v)
			}
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if len(m.digits) >= 3 {
				m.digits = ""
			}
			m.digits += key
			v, _ := strconv.Atoi(m.digits)
			m.machine.SetControl(v)
		}
	}
}

func (m *Model) move(delta int) tea.Cmd {
	if m.machine.Step() == flow.StepControl {
		m.digits = ""
		m.machine.Nudge(-delta)
		return nil
	}
	n := len(m.rows())
	if n == 0 {
		return nil
	}
	m.cursor = (m.cursor + delta + n) % n
	return m.syncInput()
}

func (m *Model) advance() tea.Cmd {
	switch m.machine.Step() {
	case flow.StepOwner:
		rows := m.rows()
		if m.cursor < len(rows) && m.machine.Owner() == task.OwnerUnset {
			rows[m.cursor].toggle()
		}
	case flow.StepMessage:
		res, err := m.machine.Submit(m.ctx, m.adder)
		m.err = err
		if m.machine.Step() == flow.StepResult {
			m.result = &res
		}
		m.input.Blur()
		return nil
	}
	if !m.machine.Next() {
		return nil
	}
	m.cursor = 0
	m.digits = ""
	if m.machine.Step() == flow.StepControl {
		m.snapIntoRange()
	}
	return m.syncInput()
}

// snapIntoRange starts the slider at the nearest edge of the suggested range
// the first time the control step is shown for an owner.
func (m *Model) snapIntoRange() {
	r := m.machine.Range()
	if m.machine.Control() == flow.DefaultControl && !r.Valid(flow.DefaultControl) {
		if flow.DefaultControl < r.Min {
			m.machine.SetControl(r.Min)
		} else {
			m.machine.SetControl(r.Max)
		}
	}
}

// syncInput points the shared text input at the row under the cursor.
func (m *Model) syncInput() tea.Cmd {
	rows := m.rows()
	if m.cursor < len(rows) && rows[m.cursor].kind == rowText {
		r := rows[m.cursor]
		m.input.SetValue(r.text)
		m.input.Placeholder = r.placeholder
		m.input.CursorEnd()
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) rows() []row {
	mc := m.machine
	var rows []row
	switch mc.Step() {
	case flow.StepCategory:
		for _, c := range task.Categories {
			c := c
			rows = append(rows, row{kind: rowOption, label: c, checked: mc.HasCategory(c),
				toggle: func() { mc.ToggleCategory(c) }})
		}
		if mc.HasCategory(task.Other) {
			rows = append(rows, row{kind: rowText, label: "Other", text: mc.OtherCategory(),
				placeholder: "name it in a few words", set: mc.SetOtherCategory})
		}
		rows = append(rows, row{kind: rowOption, label: "It felt positive", checked: mc.Polarity() == task.Positive,
			toggle: func() {
				if mc.Polarity() == task.Positive {
					mc.SetPolarity(task.Negative)
				} else {
					mc.SetPolarity(task.Positive)
				}
			}})
	case flow.StepFocus:
		rows = append(rows, row{kind: rowText, label: "Focus", text: mc.Focus(),
			placeholder: "what is on your mind?", set: mc.SetFocus})
		for _, a := range task.Aspects() {
			a := a
			rows = append(rows, row{kind: rowOption, label: "about " + string(a), checked: mc.Aspect() == a,
				toggle: func() { mc.ToggleAspect(a) }})
		}
		for _, w := range task.Worries {
			w := w
			rows = append(rows, row{kind: rowOption, label: w, checked: mc.HasWorry(w),
				toggle: func() { mc.ToggleWorry(w) }})
		}
		if mc.HasWorry(task.Other) {
			rows = append(rows, row{kind: rowText, label: "Other", text: mc.OtherWorry(),
				placeholder: "describe the worry", set: mc.SetOtherWorry})
		}
	case flow.StepOwner:
		for _, o := range task.Owners() {
			o := o
			rows = append(rows, row{kind: rowOption, label: ownerLabel(o), checked: mc.Owner() == o,
				toggle: func() { mc.SetOwner(o) }})
		}
	case flow.StepMessage:
		rows = append(rows, row{kind: rowText, label: "Message", text: mc.Message(),
			placeholder: "a line for yourself (optional)", set: mc.SetMessage})
	}
	return rows
}

func ownerLabel(o task.Owner) string {
	switch o {
	case task.OwnerMine:
		return "Mine: mostly up to me"
	case task.OwnerShared:
		return "Shared: partly me, partly others"
	case task.OwnerTheirs:
		return "Theirs: mostly up to someone else"
	}
	return string(o)
}

var stepTitles = map[flow.Step]string{
	flow.StepCategory: "What is this about?",
	flow.StepFocus:    "What are you focused on?",
	flow.StepOwner:    "Whose is it?",
	flow.StepControl:  "How much is in your control?",
	flow.StepMessage:  "Anything to tell yourself?",
	flow.StepResult:   "Recorded",
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	title := m.theme.Modal.Title
	faint := m.theme.Modal.Muted

	step := m.machine.Step()
	lines := []string{title.Render(stepTitles[step])}
	if step >= flow.StepCategory && step <= flow.StepMessage {
		lines[0] += m.theme.Modal.Step.Render(fmt.Sprintf("  %d/5", int(step)))
	}
	lines = append(lines, "")

	cursorRow, cursorCol := -1, 0
	switch step {
	case flow.StepControl:
		lines = append(lines, m.controlLines()...)
	case flow.StepResult:
		lines = append(lines, m.resultLines()...)
	default:
		for i, r := range m.rows() {
			marker := "  "
			if i == m.cursor {
				marker = "→ "
			}
			switch r.kind {
			case rowOption:
				box := "[ ] "
				if r.checked {
					box = "[x] "
				}
				lines = append(lines, marker+box+r.label)
			case rowText:
				prefix := marker + r.label + ": "
				if i == m.cursor {
					cursorRow, cursorCol = len(lines), lipgloss.Width(prefix)
					lines = append(lines, prefix+m.input.View())
				} else {
					text := r.text
					if text == "" {
						text = faint.Render(r.placeholder)
					}
					lines = append(lines, prefix+text)
				}
			}
		}
	}

	if n := m.machine.Notice(); n != "" {
		lines = append(lines, "", m.theme.Modal.Notice.Render(n))
	}
	if w := m.machine.Warning(); w != "" {
		lines = append(lines, "", m.theme.Modal.Warning.Render(w))
	}
	if m.err != nil {
		lines = append(lines, "", m.theme.Modal.Warning.Render(m.err.Error()))
	}
	lines = append(lines, "", m.theme.Modal.Help.Render(m.help()))

	content := strings.Join(lines, "\n")
	panel := m.theme.Modal.Frame.Width(m.idealModalWidth(width)).Render(content)

	var cursor *tea.Cursor
	if c := m.input.Cursor(); c != nil && cursorRow >= 0 {
		clone := *c
		panelW, panelH := lipgloss.Width(panel), lipgloss.Height(panel)
		left := (width - panelW) / 2
		top := (height - panelH) / 2
		if left < 0 {
			left = 0
		}
		if top < 0 {
			top = 0
		}
		clone.Position.X += left + 1 + 2 + cursorCol // border, padding
		clone.Position.Y += top + 1 + 1 + cursorRow
		cursor = &clone
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel), cursor
}

func (m *Model) controlLines() []string {
	r := m.machine.Range()
	level := m.machine.Control()
	const slots = 20
	var b strings.Builder
	in, out := m.theme.Slider.In, m.theme.Slider.Out
	pos := level * slots / 100
	for i := 0; i <= slots; i++ {
		v := i * 100 / slots
		ch := "─"
		if i == pos {
			ch = "●"
		}
		if r.Valid(v) {
			b.WriteString(in.Render(ch))
		} else {
			b.WriteString(out.Render(ch))
		}
	}
	return []string{
		fmt.Sprintf("Owner: %s", m.machine.Owner()),
		"",
		b.String() + fmt.Sprintf("  %3d%%", level),
		fmt.Sprintf("Suggested: %s%%", r),
		"",
		wordwrap.String(r.Advice, m.idealModalWidth(m.width)-6),
	}
}

func (m *Model) resultLines() []string {
	if m.result == nil || m.result.Task == nil {
		return nil
	}
	t := m.result.Task
	lines := []string{
		fmt.Sprintf("%s · %s · %d%%", strings.Join(t.Category, ", "), t.Owner, t.ControlLevel),
	}
	if t.Reflection.Focus != "" {
		lines = append(lines, t.Reflection.Focus)
	}
	lines = append(lines, "", m.theme.Modal.Quote.Render("“"+m.result.Quote+"”"), "",
		"Reflect on it with `unload journal edit "+shortID(t.ID)+"`",
		"or see your week with `unload stats`.")
	return lines
}

func (m *Model) help() string {
	switch m.machine.Step() {
	case flow.StepControl:
		return "←/→ ±5 · ↑/↓ ±1 · digits type · Enter next · ctrl+b back · Esc cancel"
	case flow.StepMessage:
		return "Enter save · ctrl+b back · Esc cancel"
	case flow.StepResult:
		return "Enter close"
	}
	return "↑/↓ move · Space toggle · Enter next · ctrl+b back · Esc cancel"
}

func (m *Model) idealModalWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	modalWidth := width - 8
	if modalWidth > 64 {
		modalWidth = 64
	}
	if modalWidth < 24 {
		modalWidth = width - 4
		if modalWidth < 20 {
			modalWidth = 20
		}
	}
	return modalWidth
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run shows the wizard full screen and returns the recorded result. ok is
// false when the user cancelled.
func Run(ctx context.Context, adder flow.Adder) (res flow.Result, ok bool, err error) {
	m := New(ctx, adder)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return flow.Result{}, false, err
	}
	res, ok = m.Result()
	return res, ok, m.Err()
}
