package cli

import (
	"context"
	"fmt"
	"strings"

	"task-planner/internal/errors"
)

// MenuCommand is one entry of the interactive menu
type MenuCommand interface {
	Label() string
	Execute(ctx context.Context) error
}

// CommandRegistry maps menu keys to commands, keeping registration order
type CommandRegistry struct {
	keys     []string
	commands map[string]MenuCommand
}

// NewCommandRegistry creates a registry holding the planner menu
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]MenuCommand),
	}

	// Register all commands
	registry.Register("1", &registerMemberCommand{app: app})
	registry.Register("2", &createProjectCommand{app: app})
	registry.Register("3", &attachMemberCommand{app: app})
	registry.Register("4", &createTaskCommand{app: app})
	registry.Register("5", &assignTaskCommand{app: app})
	registry.Register("6", &changeStatusCommand{app: app})
	registry.Register("7", &upcomingTasksCommand{app: app})
	registry.Register("8", &projectBoardsCommand{app: app})

	return registry
}

// Register adds a command under key. Re-registering a key replaces it.
func (r *CommandRegistry) Register(key string, command MenuCommand) {
	if _, exists := r.commands[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.commands[key] = command
}

// Has reports whether key is registered
func (r *CommandRegistry) Has(key string) bool {
	_, exists := r.commands[key]
	return exists
}

// Execute runs the command registered under key
func (r *CommandRegistry) Execute(ctx context.Context, key string) error {
	command, exists := r.commands[key]
	if !exists {
		return errors.NewInvalidInputError("command", key, "unknown command")
	}
	return command.Execute(ctx)
}

// Menu renders the numbered menu including the exit entry
func (r *CommandRegistry) Menu() string {
	var b strings.Builder
	b.WriteString("Choose an action:\n")
	for _, key := range r.keys {
		fmt.Fprintf(&b, "%s. %s\n", key, r.commands[key].Label())
	}
	fmt.Fprintf(&b, "%s. Exit\n", exitKey)
	return b.String()
}
