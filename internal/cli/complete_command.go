package cli

import (
	"context"
	"fmt"
)

// CompleteCommand marks a quest done, or not done with undo
type CompleteCommand struct {
	app  *App
	undo bool
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App, undo bool) *CompleteCommand {
	return &CompleteCommand{app: app, undo: undo}
}

// Execute expects the quest id as its only argument
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	quest, err := c.app.service.CompleteQuest(ctx, id, !c.undo)
	if err != nil {
		return c.app.errors.Handle("complete quest", err)
	}

	if quest.Completed {
		fmt.Fprintf(c.app.out, "Completed quest %d\n", quest.ID)
	} else {
		fmt.Fprintf(c.app.out, "Reopened quest %d\n", quest.ID)
	}
	return nil
}
