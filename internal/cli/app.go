package cli

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/repository/sqlite"
	"todo/internal/services"
)

// RepositoryOpener opens the todo store described by cfg
type RepositoryOpener func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error)

// App represents one run of the CLI application. Storage is opened on
// first use and at most once.
type App struct {
	config   *config.Config
	out      io.Writer
	errOut   io.Writer
	usage    string
	registry *CommandRegistry
	opener   RepositoryOpener

	repo    sqlite.Repository
	service services.TaskService
}

// NewApp creates a new CLI application writing command output to out and
// diagnostics to errOut
func NewApp(cfg *config.Config, out, errOut io.Writer) *App {
	app := &App{
		config: cfg,
		out:    out,
		errOut: errOut,
		opener: config.CreateRepository,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// WithRepositoryOpener replaces how the store is opened
func (a *App) WithRepositoryOpener(opener RepositoryOpener) *App {
	a.opener = opener
	return a
}

// WithUsage sets the help text printed for help and unknown tokens
func (a *App) WithUsage(usage string) *App {
	a.usage = usage
	return a
}

// Usage returns the help text
func (a *App) Usage() string {
	if a.usage == "" {
		return a.registry.GetUsage()
	}
	return a.usage
}

// TaskService returns the task service, opening the store on first call
func (a *App) TaskService(ctx context.Context) (services.TaskService, error) {
	if a.service != nil {
		return a.service, nil
	}

	repo, err := a.opener(ctx, a.config)
	if err != nil {
		return nil, err
	}

	a.repo = repo
	a.service = services.NewTaskService(repo, a.config)
	return a.service, nil
}

// Close releases the store if it was opened
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.service = nil
	return err
}

// Run executes the command tokens in order
func (a *App) Run(ctx context.Context, tokens []string) error {
	return NewDispatcher(a).Run(ctx, tokens)
}
