package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	var statusOnly bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar migraciones pendientes (o mostrar la versión con --status)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !statusOnly {
				if err := e.deps.Migrate(); err != nil {
					return err
				}
			}
			st, err := e.deps.Status()
			if err != nil {
				return err
			}
			return writeJSON(map[string]any{
				"dialect": e.deps.Dialect,
				"version": st.Version,
				"latest":  st.Latest,
				"dirty":   st.Dirty,
				"pending": st.Pending(),
			})
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "Solo mostrar el estado, sin migrar")
	return cmd
}
