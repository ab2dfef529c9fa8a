package cli

import (
	"context"
	"fmt"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute prints every task with its 1-based display position
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	service, err := c.app.TaskService(ctx)
	if err != nil {
		return err
	}

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.out, "Todo items:")
	for i, task := range tasks {
		fmt.Fprintf(c.app.out, "%d: %s\n", i+1, task.Name)
	}
	return nil
}
