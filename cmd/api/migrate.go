package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/config"
	dbpkg "github.com/AllanOliveira2022/GameZone-sub000/internal/db"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Gerencia o schema do banco",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica migrações pendentes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			applied, err := dbpkg.MigrateUp(cfg.DBUrl)
			if err != nil {
				return err
			}
			if !applied {
				fmt.Fprintln(cmd.OutOrStdout(), "nada a aplicar")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrações aplicadas")
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Desfaz migrações",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps deve ser >= 1")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := dbpkg.MigrateDown(cfg.DBUrl, steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d migração(ões) desfeita(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a desfazer")
	cmd.AddCommand(down)

	return cmd
}
