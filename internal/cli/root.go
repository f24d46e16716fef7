package cli

import (
	"time"

	"github.com/alexanderramin/zeit/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Tasks    service.TaskService
	Tracking service.TrackingService

	// ChartWidth is the bar length of the longest report bar.
	ChartWidth int

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "zeit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "zeit",
		Short:         "Track where your time goes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTaskCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newReportCmd(app),
		newWatchCmd(app),
	)

	return root
}
