package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión guardada en este equipo",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		store.Hydrate()
		store.Logout()
		fmt.Println("Sesión cerrada.")
		return nil
	},
}
