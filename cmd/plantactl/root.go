package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Planta-api/internal/bootstrap"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// env dependencias abiertas por el PersistentPreRunE del comando raíz.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	deps *bootstrap.App
}

func newRootCmd() *cobra.Command {
	e := &env{}
	var dbPath string

	cmd := &cobra.Command{
		Use:           "plantactl",
		Short:         "Planta: migraciones, datos base, impacto de paradas e informes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DB.Driver, cfg.DB.SQLitePath = config.DriverSQLite, dbPath
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: "development", Level: cfg.Log.Level})
			e.deps, err = bootstrap.Open(cmd.Context(), cfg, e.log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.deps == nil {
				return nil
			}
			return e.deps.Close()
		},
	}
	cmd.PersistentFlags().StringVar(&dbPath, "sqlite", "", "Ruta de una base SQLite (ignora DB_DRIVER)")

	cmd.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newImpactCmd(e),
		newCapacityCmd(e),
		newSummaryCmd(e),
		newReportCmd(e),
	)
	return cmd
}
