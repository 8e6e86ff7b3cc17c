// Package printers renders tasks, journal pages, stats and cues for the
// terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/cue"
	"tableflip.dev/unload/pkg/journal"
	"tableflip.dev/unload/pkg/suggest"
	"tableflip.dev/unload/pkg/task"
)

const (
	timeLayout = "2006-01-02 15:04"
	wrapWidth  = 72
	idWidth    = len("00000000")
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var spacing = strings.Repeat(" ", idWidth+2)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// ShortID trims an id to the prefix shown in listings.
func ShortID(id string) string {
	if len(id) > idWidth {
		return id[:idWidth]
	}
	return id
}

// Tasks prints one line per task.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	for _, t := range tasks {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), ShortID(t.ID)+"  ")
		}
		_, _ = faint.Fprint(pp.out(), t.CreatedAt.Local().Format(timeLayout)+" ")
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s",
			OwnerColor(t.Owner).Sprint(OwnerGlyph(t.Owner)),
			Level(t.ControlLevel),
			strings.Join(t.Category, ", "))
		if len(t.Worry) > 0 {
			_, _ = faint.Fprintf(pp.out(), " · %s", strings.Join(t.Worry, ", "))
		}
		_, _ = fmt.Fprintln(pp.out())
	}
	_, _ = fmt.Fprintln(pp.out())
}

// Task prints a task with its reflection.
func (pp *PrettyPrint) Task(t *task.Task) {
	b := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("ID"), t.ID)
	tbl.AddRow(b.Sprint("Created"), t.CreatedAt.Local().Format(timeLayout))
	tbl.AddRow(b.Sprint("Category"), strings.Join(t.Category, ", "))
	if len(t.Worry) > 0 {
		tbl.AddRow(b.Sprint("Worry"), strings.Join(t.Worry, ", "))
	}
	tbl.AddRow(b.Sprint("Owner"), OwnerColor(t.Owner).Sprint(string(t.Owner)))
	tbl.AddRow(b.Sprint("Control"), fmt.Sprintf("%s  (suggested %s)", Level(t.ControlLevel), suggest.ControlRange(t.Owner)))
	tbl.AddRow(b.Sprint("Polarity"), string(t.EffectivePolarity()))
	if t.Perspective != "" {
		tbl.AddRow(b.Sprint("Perspective"), string(t.Perspective))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())

	r := t.Reflection
	if r.IsZero() && t.LegacyReflection != "" {
		r = task.ParseLegacyReflection(t.LegacyReflection)
	}
	if r.Focus != "" {
		pp.section("Focus", r.Focus)
	}
	if r.Aspect != task.AspectNone {
		pp.section("Aspect", string(r.Aspect))
	}
	for _, p := range task.Perspectives() {
		if note := r.Note(p); note != "" {
			pp.section(perspectiveTitle(p), note)
		}
	}
	if r.Message != "" {
		pp.section("Message", r.Message)
	}
	if t.FinalMessage != "" {
		pp.section("Final message", t.FinalMessage)
	}
	if r.IsZero() && t.FinalMessage == "" {
		_, _ = faint.Fprintln(pp.out(), "No reflection yet.")
		_, _ = fmt.Fprintln(pp.out())
	}
}

func (pp *PrettyPrint) section(title, body string) {
	h := color.New(color.Bold, color.FgCyan)
	_, _ = h.Fprintln(pp.out(), title)
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(body, wrapWidth))
	_, _ = fmt.Fprintln(pp.out())
}

// Journal prints tasks grouped by day.
func (pp *PrettyPrint) Journal(days []journal.Day) {
	if len(days) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " nothing journaled yet\n\n")
		return
	}
	for _, d := range days {
		pp.TitleWithCount(d.Label, len(d.Tasks))
		for _, t := range d.Tasks {
			pp.Tasks(t)
			if f := t.Title(); f != "" && f != strings.Join(t.Category, ", ") {
				_, _ = color.New(color.Italic).Fprintln(pp.out(), indent(wordwrap.String(f, wrapWidth-4)))
				_, _ = fmt.Fprintln(pp.out())
			}
		}
	}
}

// Stats prints the dashboard summary.
func (pp *PrettyPrint) Stats(s app.Summary) {
	b := color.New(color.Bold)

	pp.Title("Entries")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Today"), s.Windows.Today)
	tbl.AddRow(b.Sprint("This week"), s.Windows.Week)
	tbl.AddRow(b.Sprint("This month"), s.Windows.Month)
	tbl.AddRow(b.Sprint("All time"), s.Windows.Total)
	tbl.AddRow(b.Sprint("Avg control"), fmt.Sprintf("%.0f%%", s.Windows.AverageControl))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())

	pp.Title("Ownership")
	tbl = uitable.New()
	tbl.Separator = "  "
	for _, o := range task.Owners() {
		tbl.AddRow(OwnerColor(o).Sprint(string(o)), s.ByOwner[o])
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())

	pp.Title("Top categories")
	if len(s.TopCategories) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " none\n\n")
		return
	}
	tbl = uitable.New()
	tbl.Separator = "  "
	for _, c := range s.TopCategories {
		tbl.AddRow(c.Label, c.Count)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Cue prints a cue card.
func (pp *PrettyPrint) Cue(c cue.Cue, source cue.Source) {
	faint := color.New(color.Faint)
	title := c.Title
	if source == cue.SourceRecords {
		title += " (from your recent entries)"
	}
	pp.Title(title)
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(c.Description, wrapWidth))
	_, _ = fmt.Fprintln(pp.out())
	_, _ = color.New(color.Bold).Fprint(pp.out(), "Practice: ")
	_, _ = fmt.Fprintln(pp.out(), c.Practice)
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(c.Action, wrapWidth))
	_, _ = fmt.Fprintln(pp.out())
	_, _ = faint.Fprintln(pp.out(), indent(wordwrap.String("“"+c.Quote+"”", wrapWidth-4)))
	_, _ = fmt.Fprintln(pp.out())
}

// Level renders a control level with a small bar.
func Level(level int) string {
	filled := level / 20
	if filled > 5 {
		filled = 5
	}
	return fmt.Sprintf("%3d%% %s%s", level, strings.Repeat("▰", filled), strings.Repeat("▱", 5-filled))
}

// OwnerGlyph is the marker listings use for an owner.
func OwnerGlyph(o task.Owner) string {
	switch o {
	case task.OwnerMine:
		return "●"
	case task.OwnerShared:
		return "◐"
	case task.OwnerTheirs:
		return "○"
	}
	return "·"
}

func OwnerColor(o task.Owner) *color.Color {
	switch o {
	case task.OwnerMine:
		return color.New(color.FgGreen)
	case task.OwnerShared:
		return color.New(color.FgYellow)
	case task.OwnerTheirs:
		return color.New(color.FgBlue)
	}
	return color.New(color.Faint)
}

func perspectiveTitle(p task.Perspective) string {
	switch p {
	case task.PerspectiveReality:
		return "Reality"
	case task.PerspectiveDistance:
		return "Distance"
	case task.PerspectiveValue:
		return "Value"
	case task.PerspectiveObserve:
		return "Observe"
	}
	return string(p)
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
