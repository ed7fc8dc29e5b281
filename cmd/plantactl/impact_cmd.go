package main

import (
	"time"

	"github.com/spf13/cobra"
)

func windowFlags(cmd *cobra.Command, lineID, from, to *string) {
	today := time.Now().UTC().Format("2006-01-02")
	cmd.Flags().StringVar(lineID, "line", "", "ID de la línea (requerido)")
	cmd.Flags().StringVar(from, "from", today, "Inicio de la ventana (RFC 3339 o YYYY-MM-DD)")
	cmd.Flags().StringVar(to, "to", time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02"), "Fin de la ventana")
	_ = cmd.MarkFlagRequired("line")
}

func newImpactCmd(e *env) *cobra.Command {
	var lineID, from, to string
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Horas perdidas (aprobadas) y previstas de una línea",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, t, err := parseWindow(from, to)
			if err != nil {
				return err
			}
			out, err := e.deps.Downtime.Impact(cmd.Context(), lineID, f, t)
			if err != nil {
				return err
			}
			return writeJSON(out)
		},
	}
	windowFlags(cmd, &lineID, &from, &to)
	return cmd
}

func newCapacityCmd(e *env) *cobra.Command {
	var lineID, from, to string
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Capacidad planificada, perdida y disponible de una línea",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, t, err := parseWindow(from, to)
			if err != nil {
				return err
			}
			out, err := e.deps.Downtime.Capacity(cmd.Context(), lineID, f, t)
			if err != nil {
				return err
			}
			return writeJSON(out)
		},
	}
	windowFlags(cmd, &lineID, &from, &to)
	return cmd
}
