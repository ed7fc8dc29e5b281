package main

import "github.com/spf13/cobra"

func newSummaryCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totales de inventario por etapa y estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(e.deps.Inventory.GetSummary(cmd.Context()))
		},
	}
}
