package cli

import (
	"context"
	"fmt"
)

// UpdateCommand replaces every mutable field of a quest
type UpdateCommand struct {
	app   *App
	flags QuestFlags
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App, flags QuestFlags) *UpdateCommand {
	return &UpdateCommand{app: app, flags: flags}
}

// Execute expects the id followed by the description words
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	candidate, err := c.flags.ToQuest(descriptionFromArgs(args[1:]))
	if err != nil {
		return c.app.errors.Handle("update quest", err)
	}

	updated, err := c.app.service.UpdateQuest(ctx, id, candidate)
	if err != nil {
		return c.app.errors.Handle("update quest", err)
	}

	fmt.Fprintf(c.app.out, "Updated quest %d\n", updated.ID)
	return printQuest(c.app.out, updated)
}
