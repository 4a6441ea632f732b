package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"quest-tracker/internal/config"
	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
	"quest-tracker/internal/services"
)

// Command is a single CLI operation run against the quest service
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// ServiceFactory opens the quest service for a loaded configuration. The returned
// closer, when non-nil, is closed once the command finishes.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (services.QuestService, io.Closer, error)

// DefaultServiceFactory opens the configured repository and wraps it in the quest service.
func DefaultServiceFactory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (services.QuestService, io.Closer, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewQuestService(repo, logger), repo, nil
}

// App carries what every command needs
type App struct {
	service services.QuestService
	config  *config.Config
	logger  *slog.Logger
	out     io.Writer
	errors  *ErrorHandler
}

// NewApp creates a CLI application instance with dependency injection
func NewApp(service services.QuestService, cfg *config.Config, logger *slog.Logger, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		service: service,
		config:  cfg,
		logger:  logger,
		out:     out,
		errors:  NewErrorHandler(),
	}
}

// parseID reads a quest id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "must be an integer")
	}
	return id, nil
}

// descriptionFromArgs joins the words of a description. No words means no description.
func descriptionFromArgs(args []string) *string {
	if len(args) == 0 {
		return nil
	}
	return domain.StringPtr(strings.Join(args, " "))
}
