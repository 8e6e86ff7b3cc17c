// Package cue picks the focus cue shown on the dashboard: one per calendar
// day, unless the recorded tasks point clearly at another.
package cue

import (
	"time"

	"tableflip.dev/unload/pkg/task"
)

// Vote weights. A category says more about the situation than a single worry
// label does.
const (
	CategoryWeight = 2
	WorryWeight    = 1
)

// Source says why a cue was chosen.
type Source string

const (
	SourceDate    Source = "date"
	SourceRecords Source = "records"
)

// OfTheDay returns the cue for the calendar day of now. Calls on the same day
// always return the same cue.
func OfTheDay(now time.Time) Cue {
	return Catalog[now.YearDay()%len(Catalog)]
}

// Infer tallies the cue each record points at and returns the winner. It
// returns false when no record maps to any cue.
func Infer(records []*task.Task) (Cue, bool) {
	b := NewBallot()
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, c := range r.Category {
			if id, ok := CategoryCues[c]; ok {
				b.Vote(id, CategoryWeight)
			}
		}
		for _, w := range r.Worry {
			if id, ok := worryCue(w, r.EffectivePolarity()); ok {
				b.Vote(id, WorryWeight)
			}
		}
	}
	id, ok := b.Winner()
	if !ok {
		return Cue{}, false
	}
	return ByID(id)
}

// Select returns the inferred cue when there is one and the date cue
// otherwise. Nothing about the choice is persisted.
func Select(now time.Time, records []*task.Task) (Cue, Source) {
	if c, ok := Infer(records); ok {
		return c, SourceRecords
	}
	return OfTheDay(now), SourceDate
}

func worryCue(worry string, polarity task.Polarity) (string, bool) {
	if worry == ChangeWorry {
		if polarity == task.Positive {
			return "celebrate", true
		}
		return "accept", true
	}
	id, ok := WorryCues[worry]
	return id, ok
}

// Ballot is a weighted vote over cue ids. Ties go to the id that received
// its first vote earliest.
type Ballot struct {
	order  []string
	weight map[string]int
}

func NewBallot() *Ballot {
	return &Ballot{weight: make(map[string]int)}
}

// Vote adds weight to id.
func (b *Ballot) Vote(id string, weight int) {
	if _, seen := b.weight[id]; !seen {
		b.order = append(b.order, id)
	}
	b.weight[id] += weight
}

// Weight reports the accumulated weight for id.
func (b *Ballot) Weight(id string) int {
	return b.weight[id]
}

// Winner returns the highest weighted id.
func (b *Ballot) Winner() (string, bool) {
	best, bestWeight := "", 0
	for _, id := range b.order {
		if w := b.weight[id]; best == "" || w > bestWeight {
			best, bestWeight = id, w
		}
	}
	return best, best != ""
}
