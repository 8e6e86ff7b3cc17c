// Package key prints the legend of labels, owners and lenses used in entries.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/unload/pkg/printers"
	"tableflip.dev/unload/pkg/suggest"
	"tableflip.dev/unload/pkg/task"
)

// Key prints the legend.
type Key struct {
	Out io.Writer
}

func (k *Key) out() io.Writer {
	if k.Out != nil {
		return k.Out
	}
	return color.Output
}

// Do renders categories, worries, owners and perspectives.
func (k *Key) Do(_ context.Context) error {
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(k.out(), "")
	k.labels("Categories", task.Categories)
	k.labels("Worries", task.Worries)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("   Owner"), bold.Sprint("Range"), bold.Sprint("Meaning"))
	for _, o := range task.Owners() {
		r := suggest.ControlRange(o)
		tbl.AddRow(printers.OwnerColor(o).Sprintf("%s %s", printers.OwnerGlyph(o), o), r.String(), r.Advice)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(k.out(), tbl)
	_, _ = fmt.Fprintln(k.out(), "")

	ps := make([]string, 0, len(task.Perspectives()))
	for _, p := range task.Perspectives() {
		ps = append(ps, string(p))
	}
	_, _ = fmt.Fprintf(k.out(), "%s  %s\n\n", bold.Sprint("Perspectives"), strings.Join(ps, ", "))
	return nil
}

func (k *Key) labels(title string, labels []string) {
	bold := color.New(color.Bold)
	_, _ = fmt.Fprintf(k.out(), "%s  %s\n\n", bold.Sprint(title), strings.Join(labels, "  "))
}
