package cmd

import (
	"github.com/spf13/cobra"

	"github.com/knaranjo357/icfes/internal/api"
	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "icfes",
	Short: "Práctica para el examen ICFES en la terminal",
	Long:  "ICFES — simulacros de la prueba Saber 11 por materia o examen completo, con historial y estadísticas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("session-file", "", "Ruta del archivo de sesión (anula ICFES_SESSION_FILE)")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildDeps loads configuration and constructs the shared client and
// session store.
func buildDeps(cmd *cobra.Command) (*api.Client, *auth.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if p, _ := cmd.Flags().GetString("session-file"); p != "" {
		cfg.SessionFile = p
	}

	client := api.New(cfg.BaseURL, cfg.HTTPTimeout)
	store := auth.NewStore(client, cfg.SessionFile)
	return client, store, nil
}
