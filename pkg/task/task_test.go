package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPatchLeavesWriteOnceFields(t *testing.T) {
	created := Timestamp{Time: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	orig := &Task{
		ID:           "a",
		CreatedAt:    created,
		Category:     []string{"面試壓力"},
		Worry:        []string{"擔心表現"},
		Owner:        OwnerMine,
		ControlLevel: 75,
	}
	msg := "breathe"
	persp := PerspectiveDistance
	refl := Reflection{Focus: "the interview"}.WithNote(PerspectiveDistance, "in a year this is small")
	Patch{
		Reflection:   &refl,
		FinalMessage: &msg,
		Perspective:  &persp,
		Worry:        []string{"自我懷疑"},
	}.Apply(orig)

	if orig.ID != "a" || !orig.CreatedAt.Equal(created.Time) || orig.Owner != OwnerMine || orig.ControlLevel != 75 {
		t.Fatalf("write-once fields changed: %+v", orig)
	}
	if diff := cmp.Diff([]string{"面試壓力"}, orig.Category); diff != "" {
		t.Fatalf("category changed (-want +got):\n%s", diff)
	}
	if orig.FinalMessage != msg || orig.Perspective != persp || orig.Worry[0] != "自我懷疑" {
		t.Fatalf("patch not applied: %+v", orig)
	}
	if orig.Reflection.Note(PerspectiveDistance) != "in a year this is small" {
		t.Fatalf("reflection not applied: %+v", orig.Reflection)
	}

	// The patch must not alias the caller's reflection.
	refl.Notes[PerspectiveDistance] = "changed"
	if orig.Reflection.Note(PerspectiveDistance) == "changed" {
		t.Fatalf("reflection notes aliased")
	}
}

func TestEffectivePolarity(t *testing.T) {
	if (&Task{}).EffectivePolarity() != Negative {
		t.Fatalf("expected negative default")
	}
	if (&Task{Polarity: Positive}).EffectivePolarity() != Positive {
		t.Fatalf("expected positive")
	}
}

func TestCatalogMembership(t *testing.T) {
	if !IsKnownCategory("面試壓力") {
		t.Fatalf("面試壓力 should be a known category")
	}
	if IsKnownCategory("搬家") {
		t.Fatalf("搬家 is free text")
	}
	if IsKnownCategory(Other) {
		t.Fatalf("the Other marker is not a storable category")
	}
	if !IsKnownWorry("擔心表現") {
		t.Fatalf("擔心表現 should be a known worry")
	}
	if !IsOther("Other") || !IsOther("其他") {
		t.Fatalf("both Other spellings should match")
	}
}

func TestParseOwner(t *testing.T) {
	tests := map[string]Owner{
		"mine":     OwnerMine,
		"Theirs":   OwnerTheirs,
		" shared ": OwnerShared,
		"共同的":      OwnerShared,
		"":         OwnerUnset,
	}
	for in, want := range tests {
		got, err := ParseOwner(in)
		if err != nil || got != want {
			t.Errorf("ParseOwner(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOwner("nobody"); err == nil {
		t.Fatalf("expected error for unknown owner")
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)}
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-02-29T23:59:00Z"` {
		t.Fatalf("unexpected encoding %s", b)
	}
	var zero Timestamp
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil || !zero.IsZero() {
		t.Fatalf("empty timestamp should decode to zero, got %v %v", zero, err)
	}
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := Timestamp{Time: time.Date(2024, 6, 1, 16, 30, 0, 0, time.UTC)} // 00:30 next day in loc
	if !ts.SameDay(time.Date(2024, 6, 2, 12, 0, 0, 0, loc)) {
		t.Fatalf("expected same day in loc")
	}
	if ts.SameDay(time.Date(2024, 6, 1, 12, 0, 0, 0, loc)) {
		t.Fatalf("expected different day in loc")
	}
}
