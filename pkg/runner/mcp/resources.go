package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/unload/pkg/history"
)

const (
	tasksURI = "unload://tasks"
	taskURI  = "unload://tasks/"
	cueURI   = "unload://cue"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTasksResource(srv, svc)
	registerTaskTemplate(srv, svc)
	registerCueResource(srv, svc)
}

func registerTasksResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		tasksURI,
		"Tasks",
		mcp.WithResourceDescription("Every recorded task, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tasks := svc.ListTasks(ctx, history.Query{})
		payload := map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTaskTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		taskURI+"{id}",
		"Task Details",
		mcp.WithTemplateDescription("A single task with its reflection."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := argument(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("task id is required")
		}

		dto, err := svc.TaskByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"task": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCueResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		cueURI,
		"Daily Cue",
		mcp.WithResourceDescription("Today's focus cue."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, svc.DailyCue(ctx))
	})
}

// argument unwraps a template variable, which arrives either as a string or
// as a single element list depending on the client.
func argument(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	case []any:
		if len(a) > 0 {
			s, _ := a[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
