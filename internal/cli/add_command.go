package cli

import (
	"context"
	"fmt"

	"todo/internal/errors"
	"todo/internal/logging"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute adds args[0] as a new task
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgumentError("add", "name")
	}
	name := args[0]
	logging.Debugf("add argument: %q", name)

	service, err := c.app.TaskService(ctx)
	if err != nil {
		return err
	}

	task, err := service.AddTask(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Todo item added: %s\n", task.Name)
	return nil
}
