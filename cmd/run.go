package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knaranjo357/icfes/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	client, store, err := buildDeps(cmd)
	if err != nil {
		return fmt.Errorf("configuración: %w", err)
	}

	return app.Run(app.Options{
		Gateway: client,
		Auth:    store,
	})
}
