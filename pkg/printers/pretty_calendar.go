package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/task"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, highlighting days with entries.
func (pp *PrettyPrint) Calendar(on time.Time, tasks ...*task.Task) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, on.Location())
	pp.PrintMonth(then, tasks...)
}

func (pp *PrettyPrint) PrintMonth(then time.Time, tasks ...*task.Task) {
	days := DaysIn(then)

	count := make([]int, days)

	for _, t := range tasks {
		created := t.CreatedAt.In(then.Location())
		if created.Year() == then.Year() && created.Month() == then.Month() {
			count[created.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.FgHiMagenta)

	for i := 0; i < days; i++ {
		switch {
		case i >= len(count) || count[i] == 0:
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		case count[i] == 1:
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		default:
			_, _ = l3.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
