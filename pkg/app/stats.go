package app

import (
	"sort"
	"time"

	"tableflip.dev/unload/pkg/task"
	"tableflip.dev/unload/pkg/timeutil"
)

// Count returns how many records satisfy pred.
func Count(records []*task.Task, pred func(*task.Task) bool) int {
	n := 0
	for _, r := range records {
		if r != nil && pred(r) {
			n++
		}
	}
	return n
}

// CountByOwner tallies records per owner. Every owner is present in the
// result, with zero when unused.
func CountByOwner(records []*task.Task) map[task.Owner]int {
	out := make(map[task.Owner]int, 3)
	for _, o := range task.Owners() {
		out[o] = Count(records, func(t *task.Task) bool { return t.Owner == o })
	}
	return out
}

// LabelCount is one row of a frequency ranking.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryRanking orders category labels by how many records carry them,
// most frequent first. Equal counts keep the order labels first appeared in.
func CategoryRanking(records []*task.Task) []LabelCount {
	index := map[string]int{}
	var out []LabelCount
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, c := range r.Category {
			if i, ok := index[c]; ok {
				out[i].Count++
				continue
			}
			index[c] = len(out)
			out = append(out, LabelCount{Label: c, Count: 1})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Windows counts records created today, this week (from Sunday) and this
// calendar month.
type Windows struct {
	Today          int     `json:"today"`
	Week           int     `json:"week"`
	Month          int     `json:"month"`
	Total          int     `json:"total"`
	AverageControl float64 `json:"averageControl"`
}

// WindowStats computes Windows relative to now.
func WindowStats(records []*task.Task, now time.Time) Windows {
	day := timeutil.StartOfDay(now)
	week := timeutil.StartOfWeek(now)
	month := timeutil.StartOfMonth(now)
	since := func(start time.Time) func(*task.Task) bool {
		return func(t *task.Task) bool {
			created := t.CreatedAt.In(now.Location())
			return !created.Before(start) && !created.After(now)
		}
	}

	w := Windows{
		Today: Count(records, since(day)),
		Week:  Count(records, since(week)),
		Month: Count(records, since(month)),
		Total: Count(records, func(*task.Task) bool { return true }),
	}
	if w.Total > 0 {
		sum := 0
		for _, r := range records {
			if r != nil {
				sum += r.ControlLevel
			}
		}
		w.AverageControl = float64(sum) / float64(w.Total)
	}
	return w
}

// Summary is the dashboard view of the collection.
type Summary struct {
	Windows       Windows            `json:"windows"`
	ByOwner       map[task.Owner]int `json:"byOwner"`
	TopCategories []LabelCount       `json:"topCategories"`
}

// Summarize builds the dashboard summary, keeping at most top categories.
func Summarize(records []*task.Task, now time.Time, top int) Summary {
	ranking := CategoryRanking(records)
	if top > 0 && len(ranking) > top {
		ranking = ranking[:top]
	}
	return Summary{
		Windows:       WindowStats(records, now),
		ByOwner:       CountByOwner(records),
		TopCategories: ranking,
	}
}
