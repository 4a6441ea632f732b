package cli

import (
	"context"

	"quest-tracker/internal/api"
)

// ServeCommand runs the REST API until its context is cancelled
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute blocks until ctx is done, then shuts the server down
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	router := api.NewRouter(c.app.service, c.app.logger, api.NewMetrics())
	server := api.NewServer(router, api.ServerOptions{
		Host:            c.app.config.Server.Host,
		Port:            c.app.config.Server.Port,
		ReadTimeout:     c.app.config.Server.ReadTimeout,
		WriteTimeout:    c.app.config.Server.WriteTimeout,
		ShutdownTimeout: c.app.config.Server.ShutdownTimeout,
	}, c.app.logger)

	if err := server.Run(ctx); err != nil {
		return c.app.errors.Handle("serve", err)
	}
	return nil
}
