package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/knaranjo357/icfes/internal/results"
	"github.com/knaranjo357/icfes/internal/subjects"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Muestra tu historial y estadísticas sin abrir la interfaz",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		store.Hydrate()
		if !store.Authenticated() {
			return fmt.Errorf("no hay sesión activa; ejecuta icfes e inicia sesión primero")
		}

		rs, err := client.Results(cmd.Context(), store.Token())
		if err != nil {
			return fmt.Errorf("consultar resultados: %w", err)
		}

		materia, _ := cmd.Flags().GetString("materia")
		if materia != "" {
			if !subjects.Valid(materia) {
				return fmt.Errorf("materia desconocida %q", materia)
			}
			rs = results.FilterSubject(rs, materia)
		}

		if len(rs) == 0 {
			color.Yellow("No hay resultados todavía.")
			return nil
		}

		rs = results.SortByDateDesc(rs)

		color.Cyan("\n=== Resultados ICFES ===")
		average := results.Average(rs)
		level := results.LevelFor(average)
		fmt.Printf("Exámenes: %d   Promedio: %d   Mejor: %d   Nivel: %s\n",
			len(rs), average, results.Best(rs), level.Label)

		color.Yellow("\nPor materia")
		statsTable := tablewriter.NewWriter(os.Stdout)
		statsTable.SetHeader([]string{"Materia", "Intentos", "Promedio", "Mejor"})
		for _, key := range subjects.All() {
			stats := results.BySubject(rs, key)
			if stats.Count == 0 {
				continue
			}
			statsTable.Append([]string{
				subjects.DisplayName(key),
				fmt.Sprintf("%d", stats.Count),
				fmt.Sprintf("%d", stats.Average),
				fmt.Sprintf("%d", stats.Best),
			})
		}
		statsTable.Render()

		limit, _ := cmd.Flags().GetInt("limit")
		if limit > 0 && limit < len(rs) {
			rs = rs[:limit]
		}

		color.Yellow("\nÚltimos exámenes")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Fecha", "Materia", "Puntaje", "Tiempo"})
		for _, r := range rs {
			when := r.CreatedAt
			if t, ok := results.CreatedAt(r); ok {
				when = t.Format("2006-01-02 15:04")
			}
			name := subjects.DisplayName(r.Subject)
			if results.IsFullExam(r, len(rs)) {
				name = "Examen completo"
			}
			taken := ""
			if r.TimeTaken != nil {
				taken = *r.TimeTaken
			}
			table.Append([]string{when, name, r.Score, taken})
		}
		table.Render()

		return nil
	},
}

func init() {
	resultsCmd.Flags().String("materia", "", "Filtra por materia (p. ej. lectura)")
	resultsCmd.Flags().Int("limit", 15, "Número de exámenes recientes a listar")
}
