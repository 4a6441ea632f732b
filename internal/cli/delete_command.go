package cli

import (
	"context"
	"fmt"
)

// DeleteCommand removes a quest
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute expects the quest id as its only argument. Deletion cannot be undone.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	if err := c.app.service.DeleteQuest(ctx, id); err != nil {
		return c.app.errors.Handle("delete quest", err)
	}

	fmt.Fprintf(c.app.out, "Deleted quest %d\n", id)
	return nil
}
