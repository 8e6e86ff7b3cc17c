package journal

import (
	"sort"
	"time"

	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/timeutil"
)

// Day is one page of the journal.
type Day struct {
	Date  time.Time
	Label string
	Tasks []*task.Task
}

// Entries groups records by calendar day in now's location, newest day
// first and newest task first within a day.
func Entries(records []*task.Task, now time.Time) []Day {
	byDay := map[string]*Day{}
	var days []*Day
	for _, r := range records {
		if r == nil {
			continue
		}
		start := timeutil.StartOfDay(r.CreatedAt.In(now.Location()))
		key := start.Format("2006-01-02")
		d, ok := byDay[key]
		if !ok {
			d = &Day{Date: start, Label: DayLabel(start, now)}
			byDay[key] = d
			days = append(days, d)
		}
		d.Tasks = append(d.Tasks, r)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
	out := make([]Day, len(days))
	for i, d := range days {
		sort.SliceStable(d.Tasks, func(a, b int) bool {
			return d.Tasks[a].CreatedAt.After(d.Tasks[b].CreatedAt.Time)
		})
		out[i] = *d
	}
	return out
}

// DayLabel names day relative to now.
func DayLabel(day, now time.Time) string {
	switch {
	case timeutil.SameDay(day, now):
		return "Today"
	case timeutil.SameDay(day, now.AddDate(0, 0, -1)):
		return "Yesterday"
	case day.Year() == now.Year():
		return day.Format("Mon Jan 2")
	}
	return day.Format("Mon Jan 2, 2006")
}
