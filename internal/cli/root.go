package cli

import (
	"github.com/alexanderramin/compass/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Templates service.TemplateService
	Paths     service.InstantiationService
	Plans     service.PlanService
	Gates     service.GateService

	// IsInteractive reports whether stdin is a terminal; wizards only run
	// when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "compass",
		Short: "Guided development path planner and milestone gate evaluator",
	}

	root.AddCommand(
		newTemplateCmd(app),
		newPathCmd(app),
		newGateCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
