package cli

import (
	"context"
	"fmt"

	"todo/internal/errors"
	"todo/internal/logging"
)

// Dispatcher walks the command tokens left to right. Each command consumes
// its own following tokens. Input errors are reported and scanning goes on.
// Any other error ends the run.
type Dispatcher struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDispatcher creates a dispatcher over the app's commands
func NewDispatcher(app *App) *Dispatcher {
	return &Dispatcher{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Run dispatches every token in turn
func (d *Dispatcher) Run(ctx context.Context, tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		name := tokens[i]

		command, arity, ok := d.app.registry.Lookup(name)
		if !ok {
			return d.showUsage(name)
		}

		end := i + 1 + arity
		if end > len(tokens) {
			end = len(tokens)
		}
		args := tokens[i+1 : end]
		i = end - 1

		logging.Debugln("dispatch", name, args)
		err := command.Execute(ctx, args)
		if err == nil {
			continue
		}
		if !d.errorHandler.IsInputError(err) {
			return err
		}
		fmt.Fprintln(d.app.errOut, d.errorHandler.HandleSimple(err))
	}
	return nil
}

// showUsage prints help and returns the error that ends the run
func (d *Dispatcher) showUsage(token string) error {
	fmt.Fprint(d.app.out, d.app.Usage())
	switch token {
	case "-h", "--help", "help":
		return errors.NewUsageError("")
	default:
		return errors.NewUsageError(fmt.Sprintf("unknown command %q", token))
	}
}
