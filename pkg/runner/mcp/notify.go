package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/unload/pkg/app"
)

type notifier interface {
	SendNotificationToAllClients(method string, params map[string]any)
}

// updatedURIs lists the resources a change makes stale. The cue can follow
// the records, so it is refreshed on every change.
func updatedURIs(c app.Change) []string {
	uris := []string{tasksURI, cueURI}
	if c.ID != "" {
		uris = append(uris, taskURI+c.ID)
	}
	return uris
}

// relayChanges tells connected clients about task changes until ctx is done.
func relayChanges(ctx context.Context, svc *app.Service, n notifier) {
	changes, unsubscribe := svc.Subscribe()
	defer unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-changes:
			if !ok {
				return
			}
			for _, uri := range updatedURIs(c) {
				n.SendNotificationToAllClients(mcp.MethodNotificationResourceUpdated, map[string]any{"uri": uri})
			}
		}
	}
}
