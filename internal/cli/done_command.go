package cli

import (
	"context"
	"fmt"

	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/services"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute removes the task at the display position in args[0]
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgumentError("done", "position")
	}
	raw := args[0]
	logging.Debugf("position of the todo: %s", raw)

	// Malformed positions never open the store
	if _, err := services.ParsePosition(raw); err != nil {
		return err
	}

	service, err := c.app.TaskService(ctx)
	if err != nil {
		return err
	}

	completion, err := service.CompleteTask(ctx, raw)
	if err != nil {
		return err
	}

	if completion.RowsRemoved == 0 {
		fmt.Fprintln(c.app.out, "No todo found")
	} else {
		fmt.Fprintf(c.app.out, "Successfully deleted %d row(s).\n", completion.RowsRemoved)
	}
	return nil
}
