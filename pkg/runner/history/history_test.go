package history

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

var base = time.Date(2024, 5, 16, 9, 0, 0, 0, time.Local)

func seeded(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	svc := app.New(p, nil)
	n := 0
	svc.Now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	ctx := context.Background()
	for _, d := range []task.Draft{
		{Category: []string{"工作壓力"}, Owner: task.OwnerMine, ControlLevel: 70},
		{Category: []string{"搬家"}, Owner: task.OwnerTheirs, ControlLevel: 10},
	} {
		if _, err := svc.Add(ctx, d); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return svc
}

func TestHistoryPretty(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	n := History{
		Query:   history.Query{Category: task.Other},
		Service: seeded(t),
		Out:     &out,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "History - 1 entry") || !strings.Contains(got, "搬家") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if strings.Contains(got, "工作壓力") {
		t.Fatalf("filtered task was listed:\n%s", got)
	}
}

func TestHistoryJSON(t *testing.T) {
	var out bytes.Buffer
	n := History{
		Query:   history.Query{Window: history.WindowToday, Sort: history.SortOldest},
		JSON:    true,
		Service: seeded(t),
		Out:     &out,
		Now:     func() time.Time { return base.Add(time.Hour) },
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got []*task.Task
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got) != 2 || got[0].Category[0] != "工作壓力" {
		t.Fatalf("unexpected tasks %+v", got)
	}
}
