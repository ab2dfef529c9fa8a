package cli

import (
	"context"
	"fmt"
	"strings"

	"todo/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// registeredCommand pairs a command with the number of tokens it consumes
type registeredCommand struct {
	command Command
	arity   int
	usage   string
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]registeredCommand
	order    []string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}

	// Register all commands
	registry.Register("add", 1, "add <name>        Add a new task to your todo list", NewAddCommand(app))
	registry.Register("done", 1, "done <position>   Mark the task at a list position as completed", NewDoneCommand(app))
	registry.Register("show", 0, "show              Show your todo list", NewShowCommand(app))

	return registry
}

// Register adds a command consuming arity following tokens to the registry
func (r *CommandRegistry) Register(name string, arity int, usage string, command Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = registeredCommand{command: command, arity: arity, usage: usage}
}

// Lookup returns the command registered under name and its arity
func (r *CommandRegistry) Lookup(name string) (Command, int, bool) {
	entry, exists := r.commands[name]
	if !exists {
		return nil, 0, false
	}
	return entry.command, entry.arity, true
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, _, exists := r.Lookup(commandName)
	if !exists {
		return errors.NewUsageError(fmt.Sprintf("unknown command %q", commandName))
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	var b strings.Builder
	b.WriteString("Usage: todo [options] [command] [argument] ...\n\nCommands:\n")
	for _, name := range r.order {
		fmt.Fprintf(&b, "  %s\n", r.commands[name].usage)
	}
	return b.String()
}
