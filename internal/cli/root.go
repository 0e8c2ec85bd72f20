package cli

import (
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog service.CatalogService
	Quotes  service.QuoteService
	Plans   service.PlanService

	// IsInteractive reports whether stdin is a terminal. The plan wizard
	// refuses to start when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "itinera" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "itinera",
		Short:         "Travel itinerary pricing and assembly",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newQuoteCmd(app),
		newPlanCmd(app),
	)

	return root
}
