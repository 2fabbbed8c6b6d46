package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles   service.ProfileService
	Readings   service.ReadingService
	Charts     service.ChartService
	Compat     service.CompatibilityService
	Divination service.DivinationService

	Analysis intelligence.AnalysisService
	Persona  intelligence.PersonaService

	// IsInteractive gates the huh wizards and the bare-root session.
	// Nil means non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tianji" command and registers all
// subcommands against the provided App. A bare "tianji" in a terminal
// opens the interactive session.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tianji",
		Short: "Bazi chart engine and fortune readings in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runSession(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newProfileCmd(app),
		newChartCmd(app),
		newCyclesCmd(app),
		newAnalyzeCmd(app),
		newCompatCmd(app),
		newDivineCmd(app),
	)

	return root
}
