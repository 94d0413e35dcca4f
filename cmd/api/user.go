package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/config"
	dbpkg "github.com/AllanOliveira2022/GameZone-sub000/internal/db"
	infraRepo "github.com/AllanOliveira2022/GameZone-sub000/internal/infra/repository"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/logger"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Administra usuários",
	}

	var email string
	promote := &cobra.Command{
		Use:   "promote",
		Short: "Transforma um usuário existente em admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			db, err := dbpkg.NewDB(cfg, log)
			if err != nil {
				return err
			}
			defer dbpkg.Close(db)

			svc := ucUser.NewService(
				infraRepo.NewUserGormRepository(db),
				auth.NewBcryptHasher(0),
				auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL),
				audit.New(db, log),
				nil,
			)

			u, err := svc.Promote(ctx, email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "usuário %d (%s) agora é admin\n", u.ID, u.Email)
			return nil
		},
	}
	promote.Flags().StringVar(&email, "email", "", "email do usuário")
	_ = promote.MarkFlagRequired("email")
	cmd.AddCommand(promote)

	return cmd
}
