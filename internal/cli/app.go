package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"task-planner/internal/api"
	"task-planner/internal/config"
	"task-planner/internal/logging"
)

const exitKey = "0"

// App is the interactive planner session
type App struct {
	planner    *api.Planner
	config     *config.Config
	prompt     *Prompter
	out        io.Writer
	printer    *Printer
	errHandler *ErrorHandler
	registry   *CommandRegistry
}

// NewApp creates a session reading answers from in and writing to out
func NewApp(planner *api.Planner, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		planner:    planner,
		config:     cfg,
		prompt:     NewPrompter(in, out),
		out:        out,
		printer:    NewPrinter(out, cfg.Display.DateFormat, cfg.Application.Verbose),
		errHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run shows the menu until the user exits or input ends. Operation
// failures are printed and the loop continues; any other error ends the
// session and is returned.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Task Planner")
	fmt.Fprintln(a.out, "============")

	for {
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, a.registry.Menu())

		choice, err := a.prompt.Line("Enter command number")
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == exitKey {
			return nil
		}
		if !a.registry.Has(choice) {
			fmt.Fprintln(a.out, "Unknown command. Please try again.")
			continue
		}

		err = a.registry.Execute(ctx, choice)
		switch {
		case err == nil:
		case errors.Is(err, ErrInputClosed):
			return nil
		case a.errHandler.IsFatal(err), ctx.Err() != nil:
			logging.Debugln("cli: ending session:", err)
			return a.errHandler.HandleSimple(err)
		default:
			fmt.Fprintf(a.out, "Error: %s\n", a.errHandler.HandleSimple(err))
		}
	}
}

// callContext bounds one planner call by the application timeout. Commands
// take it after their prompts are answered.
func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout())
}

func (a *App) timeout() time.Duration {
	if a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 60 * time.Second
}

func (a *App) upcomingDays() int {
	return a.config.Planner.UpcomingDays
}
