package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/app"
	"tableflip.dev/unload/pkg/store"
	"tableflip.dev/unload/pkg/task"
)

// Seeds the configured store with a few entries spread over the past month.
func main() {
	ctx := context.Background()
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	p, err := store.Open(nil, logger)
	if err != nil {
		panic(err)
	}
	defer p.Close()

	svc := app.New(p, logger)
	if _, err := svc.Load(ctx); err != nil {
		panic(err)
	}

	now := time.Now()
	for _, e := range demo() {
		at := now.Add(-e.ago)
		svc.Now = func() time.Time { return at }
		if _, err := svc.Add(ctx, e.draft); err != nil {
			panic(err)
		}
	}

	for _, t := range svc.Tasks() {
		fmt.Println(t.CreatedAt.Local().Format("2006-01-02 15:04"), t.Owner, t.ControlLevel, t.Title())
	}
}

type seed struct {
	ago   time.Duration
	draft task.Draft
}

func demo() []seed {
	day := 24 * time.Hour
	return []seed{
		{20 * day, task.Draft{
			Category: []string{"財務"}, Worry: []string{"不確定未來"},
			Owner: task.OwnerShared, ControlLevel: 40,
			Reflection: task.Reflection{Focus: "rent is going up next quarter"},
		}},
		{6 * day, task.Draft{
			Category: []string{"人際關係"}, Worry: []string{"擔心別人看法"},
			Owner: task.OwnerTheirs, ControlLevel: 15,
			Reflection: task.Reflection{Focus: "a friend has not replied for a week"},
		}},
		{2 * day, task.Draft{
			Category: []string{"搬家"}, Worry: []string{"覺得疲憊"},
			Owner: task.OwnerShared, ControlLevel: 50, Polarity: task.Positive,
			Reflection:   task.Reflection{Focus: "moving into the new place"},
			FinalMessage: "one box a day",
		}},
		{time.Hour, task.Draft{
			Category: []string{"面試壓力"}, Worry: []string{"擔心表現"},
			Owner: task.OwnerMine, ControlLevel: 75,
			Reflection: task.Reflection{
				Focus:  "the interview on Friday",
				Aspect: task.AspectSelf,
				Notes:  map[task.Perspective]string{task.PerspectiveDistance: "in a year this is one of many interviews"},
			},
			FinalMessage: "prepare, then rest",
		}},
	}
}
