// Package history filters and orders the task collection for the history
// view and manages the two step delete confirmation.
package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/timeutil"
)

// Window limits records by creation time.
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow accepts the window names; empty means all.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return WindowAll, nil
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return w, nil
	}
	return "", fmt.Errorf("history: unknown window %q (want all, today, week or month)", s)
}

// Sort orders records by creation time.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
)

// ParseSort accepts newest or oldest; empty means newest.
func ParseSort(s string) (Sort, error) {
	switch o := Sort(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest:
		return o, nil
	}
	return "", fmt.Errorf("history: unknown sort %q (want newest or oldest)", s)
}

// All disables the category and owner filters.
const All = "all"

// Query is the set of filters applied together. Zero values match
// everything and sort newest first.
type Query struct {
	// Search is a case-sensitive substring matched against category and
	// worry labels.
	Search string
	Window Window
	// Category is an exact label, or the Other bucket (其他 or "Other")
	// matching records with a label outside the fixed enumeration.
	Category string
	Owner    task.Owner
	Sort     Sort
}

// FilterAndSort returns the records matching every filter in q, ordered by
// q.Sort. The input slice is not modified.
func FilterAndSort(records []*task.Task, q Query, now time.Time) []*task.Task {
	out := make([]*task.Task, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if matchSearch(r, q.Search) && matchWindow(r, q.Window, now) &&
			matchCategory(r, q.Category) && matchOwner(r, q.Owner) {
			out = append(out, r)
		}
	}
	oldest := q.Sort == SortOldest
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt.Time, out[j].CreatedAt.Time
		if oldest {
			return a.Before(b)
		}
		return a.After(b)
	})
	return out
}

func matchSearch(r *task.Task, search string) bool {
	if search == "" {
		return true
	}
	for _, l := range r.Labels() {
		if strings.Contains(l, search) {
			return true
		}
	}
	return false
}

func matchWindow(r *task.Task, w Window, now time.Time) bool {
	created := r.CreatedAt.Time
	switch w {
	case WindowToday:
		return timeutil.SameDay(created, now)
	case WindowWeek:
		return !created.Before(timeutil.LastWeek(now))
	case WindowMonth:
		return !created.Before(timeutil.LastMonth(now))
	}
	return true
}

func matchCategory(r *task.Task, category string) bool {
	switch {
	case category == "" || strings.EqualFold(category, All):
		return true
	case task.IsOther(category):
		for _, c := range r.Category {
			if !task.IsKnownCategory(c) {
				return true
			}
		}
		return false
	}
	for _, c := range r.Category {
		if c == category {
			return true
		}
	}
	return false
}

func matchOwner(r *task.Task, owner task.Owner) bool {
	if owner == task.OwnerUnset || strings.EqualFold(string(owner), All) {
		return true
	}
	return r.Owner == owner
}
