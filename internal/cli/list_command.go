package cli

import (
	"context"

	"quest-tracker/internal/domain"
)

// ListFlags holds the list command's options
type ListFlags struct {
	Sort      string
	Important *bool
	Search    string
	Format    string
}

// ListCommand handles the list command
type ListCommand struct {
	app   *App
	flags ListFlags
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, flags ListFlags) *ListCommand {
	return &ListCommand{app: app, flags: flags}
}

// Execute lists quests and prints them in the requested format
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	quests, err := c.app.service.ListQuests(ctx, domain.ListOptions{
		Sort:      c.flags.Sort,
		Important: c.flags.Important,
		Search:    c.flags.Search,
	})
	if err != nil {
		return c.app.errors.Handle("list quests", err)
	}

	format := c.flags.Format
	if format == "" {
		format = c.app.config.Commands.ListDefaultFormat
	}
	return c.app.errors.HandleSimple(printQuests(c.app.out, quests, format))
}
