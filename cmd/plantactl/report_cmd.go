package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newReportCmd(e *env) *cobra.Command {
	var kind, from, to, outDir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generar un informe en disco (inventory: XLSX, capacity: PDF)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				body []byte
				name string
				err  error
			)
			switch kind {
			case "inventory":
				body, name, err = e.deps.Report.InventorySummary(cmd.Context())
			case "capacity":
				f, t, perr := parseWindow(from, to)
				if perr != nil {
					return perr
				}
				body, name, err = e.deps.Report.Capacity(cmd.Context(), f, t)
			default:
				return fmt.Errorf("invalid --kind %q: inventory | capacity", kind)
			}
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			return writeJSON(map[string]any{"file": path, "bytes": len(body)})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "inventory", "inventory | capacity")
	cmd.Flags().StringVar(&from, "from", time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02"), "Inicio (capacity)")
	cmd.Flags().StringVar(&to, "to", time.Now().UTC().Format("2006-01-02"), "Fin (capacity)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directorio de salida")
	return cmd
}
