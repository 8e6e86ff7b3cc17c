package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/unload/pkg/history"
	"tableflip.dev/unload/pkg/task"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateTaskTool(srv, svc)
	registerListTasksTool(srv, svc)
	registerGetTaskTool(srv, svc)
	registerUpdateReflectionTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerDailyCueTool(srv, svc)
	registerStatsTool(srv, svc)
	registerSuggestRangeTool(srv, svc)
}

var ownerEnum = mcp.Enum("Mine", "Shared", "Theirs")

func registerCreateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Record a worry the way the entry wizard does. The control level must fall inside the range suggested for the owner (see suggest_range)."),
		mcp.WithArray("category",
			mcp.Required(),
			mcp.Description("One or two category labels, e.g. 面試壓力. Use 其他 with other_category for free text."),
			mcp.WithStringItems(),
		),
		mcp.WithString("other_category",
			mcp.Description("Free text category used when 其他 is selected."),
		),
		mcp.WithArray("worry",
			mcp.Description("Optional worry labels, e.g. 擔心表現."),
			mcp.WithStringItems(),
		),
		mcp.WithString("other_worry",
			mcp.Description("Free text worry used when 其他 is selected."),
		),
		mcp.WithString("focus",
			mcp.Required(),
			mcp.Description("One sentence about what is on the user's mind."),
		),
		mcp.WithString("aspect",
			mcp.Description("Optional tag for the focus."),
			mcp.Enum("self", "view", "future"),
		),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Who the situation belongs to."),
			ownerEnum,
		),
		mcp.WithNumber("control_level",
			mcp.Required(),
			mcp.Description("Perceived control, 0 to 100."),
			mcp.Min(0),
			mcp.Max(100),
		),
		mcp.WithString("message",
			mcp.Description("Optional closing line to self."),
		),
		mcp.WithString("polarity",
			mcp.Description("Whether the event felt positive or negative (default Negative)."),
			mcp.Enum("Positive", "Negative"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category      []string `json:"category"`
			OtherCategory string   `json:"other_category"`
			Worry         []string `json:"worry"`
			OtherWorry    string   `json:"other_worry"`
			Focus         string   `json:"focus"`
			Aspect        string   `json:"aspect"`
			Owner         string   `json:"owner"`
			ControlLevel  float64  `json:"control_level"`
			Message       string   `json:"message"`
			Polarity      string   `json:"polarity"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		owner, err := task.ParseOwner(args.Owner)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		aspect, err := task.ParseAspect(args.Aspect)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		polarity, err := task.ParsePolarity(args.Polarity)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, quote, err := svc.CreateTask(ctx, CreateTaskOptions{
			Category:      args.Category,
			OtherCategory: args.OtherCategory,
			Worry:         args.Worry,
			OtherWorry:    args.OtherWorry,
			Focus:         args.Focus,
			Aspect:        aspect,
			Owner:         owner,
			ControlLevel:  int(args.ControlLevel + 0.5),
			Message:       args.Message,
			Polarity:      polarity,
		})
		if dto == nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out := map[string]any{"task": dto, "quote": quote}
		if err != nil {
			out["warning"] = err.Error()
		}
		return toJSONResult(out)
	})
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List recorded tasks, filtered and sorted like the history view."),
		mcp.WithString("search",
			mcp.Description("Case-sensitive substring matched against category and worry labels."),
		),
		mcp.WithString("window",
			mcp.Description("Time window."),
			mcp.Enum("all", "today", "week", "month"),
		),
		mcp.WithString("category",
			mcp.Description("Exact category label, or 其他 for labels outside the fixed list."),
		),
		mcp.WithString("owner",
			mcp.Description("Owner filter."),
			mcp.Enum("all", "Mine", "Shared", "Theirs"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order."),
			mcp.Enum("newest", "oldest"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default 50)."),
			mcp.Min(1),
			mcp.Max(500),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFromRequest(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 50)

		results := svc.ListTasks(ctx, q)
		total := len(results)
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
		return toJSONResult(map[string]any{
			"tasks": results,
			"count": len(results),
			"total": total,
		})
	})
}

func queryFromRequest(request mcp.CallToolRequest) (history.Query, error) {
	window, err := history.ParseWindow(request.GetString("window", ""))
	if err != nil {
		return history.Query{}, err
	}
	order, err := history.ParseSort(request.GetString("sort", ""))
	if err != nil {
		return history.Query{}, err
	}
	var owner task.Owner
	if raw := strings.TrimSpace(request.GetString("owner", "")); raw != "" && !strings.EqualFold(raw, history.All) {
		if owner, err = task.ParseOwner(raw); err != nil {
			return history.Query{}, err
		}
	}
	return history.Query{
		Search:   request.GetString("search", ""),
		Window:   window,
		Category: strings.TrimSpace(request.GetString("category", "")),
		Owner:    owner,
		Sort:     order,
	}, nil
}

func registerGetTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.TaskByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateReflectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_reflection",
		mcp.WithDescription("Edit the reflection on a task. Only the fields provided change; category, owner and control level are fixed once recorded."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to modify."),
		),
		mcp.WithString("focus",
			mcp.Description("Replacement focus sentence."),
		),
		mcp.WithString("perspective",
			mcp.Description("Lens the note is written through. Required with note."),
			mcp.Enum("reality", "distance", "value", "observe"),
		),
		mcp.WithString("note",
			mcp.Description("Note for the perspective; empty removes it."),
		),
		mcp.WithString("final_message",
			mcp.Description("Replacement closing line."),
		),
		mcp.WithArray("worry",
			mcp.Description("Replacement worry labels."),
			mcp.WithStringItems(),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID           string   `json:"id"`
			Focus        *string  `json:"focus"`
			Perspective  string   `json:"perspective"`
			Note         *string  `json:"note"`
			FinalMessage *string  `json:"final_message"`
			Worry        []string `json:"worry"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if strings.TrimSpace(args.ID) == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		opts := ReflectionOptions{Focus: args.Focus, FinalMessage: args.FinalMessage, Worry: args.Worry}
		if args.Perspective != "" {
			p, err := task.ParsePerspective(args.Perspective)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			opts.Perspective = &p
			if args.Note != nil {
				opts.Notes = map[task.Perspective]string{p: *args.Note}
			}
		} else if args.Note != nil {
			return mcp.NewToolResultError("perspective is required with note"), nil
		}

		dto, err := svc.UpdateReflection(ctx, args.ID, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task. Ask the user first; the call only proceeds with confirm=true."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true once the user confirmed the deletion."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		deleted, err := svc.DeleteTask(ctx, id, request.GetBool("confirm", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": deleted})
	})
}

func registerDailyCueTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"daily_cue",
		mcp.WithDescription("Today's focus cue. Recent tasks can override the date based pick."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.DailyCue(ctx))
	})
}

func registerStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"stats",
		mcp.WithDescription("Counts by time window and owner, plus the most frequent categories."),
		mcp.WithNumber("top",
			mcp.Description("How many categories to rank (default 5)."),
			mcp.Min(1),
			mcp.Max(20),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Stats(ctx, request.GetInt("top", 5)))
	})
}

func registerSuggestRangeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"suggest_range",
		mcp.WithDescription("Suggested control level range for an owner."),
		mcp.WithString("owner",
			mcp.Description("Owner classification; omit for the full range."),
			ownerEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		owner, err := task.ParseOwner(request.GetString("owner", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.SuggestRange(owner))
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
