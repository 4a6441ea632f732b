package cli

import (
	"context"
)

// ShowCommand prints a single quest
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute expects the quest id as its only argument
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	quest, err := c.app.service.GetQuest(ctx, id)
	if err != nil {
		return c.app.errors.Handle("show quest", err)
	}
	return printQuest(c.app.out, quest)
}
