package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

func seeded(t *testing.T, now time.Time) *app.Service {
	t.Helper()
	p, err := store.OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	svc := app.New(p, nil)
	svc.Now = func() time.Time { return now }
	for _, d := range []task.Draft{
		{Category: []string{"財務"}, Owner: task.OwnerMine, ControlLevel: 80},
		{Category: []string{"財務", "家庭"}, Owner: task.OwnerShared, ControlLevel: 40},
	} {
		if _, err := svc.Add(context.Background(), d); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return svc
}

func TestStatsJSON(t *testing.T) {
	now := time.Date(2024, 5, 16, 12, 0, 0, 0, time.Local)
	var out bytes.Buffer
	n := Stats{JSON: true, Top: 1, Service: seeded(t, now), Out: &out, Now: func() time.Time { return now }}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got app.Summary
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if got.Windows.Today != 2 || got.Windows.Total != 2 {
		t.Errorf("unexpected windows %+v", got.Windows)
	}
	if len(got.TopCategories) != 1 || got.TopCategories[0].Label != "財務" {
		t.Errorf("unexpected ranking %+v", got.TopCategories)
	}
	if got.ByOwner[task.OwnerShared] != 1 {
		t.Errorf("unexpected owner counts %+v", got.ByOwner)
	}
}

func TestStatsCalendar(t *testing.T) {
	color.NoColor = true
	now := time.Date(2024, 5, 16, 12, 0, 0, 0, time.Local)
	var out bytes.Buffer
	n := Stats{Calendar: true, Service: seeded(t, now), Out: &out, Now: func() time.Time { return now }}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "May") {
		t.Fatalf("expected a calendar:\n%s", out.String())
	}
}
