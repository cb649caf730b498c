package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Muestra la cuenta con sesión activa",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		store.Hydrate()

		session := store.Session()
		if session == nil {
			fmt.Println("Sin sesión activa.")
			return nil
		}
		fmt.Println(session.User.Email)
		return nil
	},
}
