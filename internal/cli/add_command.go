package cli

import (
	"context"
	"fmt"
)

// AddCommand creates a quest from the command line
type AddCommand struct {
	app   *App
	flags QuestFlags
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, flags QuestFlags) *AddCommand {
	return &AddCommand{app: app, flags: flags}
}

// Execute joins args into the description. With no args the quest has no description.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	candidate, err := c.flags.ToQuest(descriptionFromArgs(args))
	if err != nil {
		return c.app.errors.Handle("add quest", err)
	}

	created, err := c.app.service.CreateQuest(ctx, candidate)
	if err != nil {
		return c.app.errors.Handle("add quest", err)
	}

	fmt.Fprintf(c.app.out, "Added quest %d\n", created.ID)
	return printQuest(c.app.out, created)
}
