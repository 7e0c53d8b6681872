package main

import (
	"fmt"

	"github.com/spf13/cobra"

	httpRouter "github.com/jhoicas/stock-opname/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-opname/pkg/jwt"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un Bearer Token para la API (usa JWT_SECRET)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch role {
			case httpRouter.RoleAuditor, httpRouter.RoleViewer:
			default:
				return fmt.Errorf("rol inválido %q: auditor | viewer", role)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.JWT.Enabled() {
				return fmt.Errorf("JWT_SECRET no configurado")
			}
			if ttl <= 0 {
				ttl = cfg.JWT.Expiration
			}
			tok, err := pkgjwt.Generate(cfg.JWT.Secret, subject, role, cfg.JWT.Issuer, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "usuario o sistema que usará el token")
	cmd.Flags().StringVar(&role, "role", "auditor", "auditor | viewer")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
