// Comando opname: genera el dashboard de stock opname desde la línea de comandos
// (resumen en tabla, JSON o YAML, PDF y tokens para la API).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-opname/pkg/config"
	"github.com/jhoicas/stock-opname/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "opname",
		Short:         "Dashboard de stock opname (Store / Gudang)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("log-level", "warn", "trace | debug | info | warn | error | off")
	root.AddCommand(newSummarizeCmd(), newPDFCmd(), newTokenCmd())
	return root
}

// newLogger escribe en stderr para no mezclar los logs con la salida del comando.
func newLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})
}

// loadConfig lee la configuración de entorno; los flags de cada comando tienen prioridad.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return cfg, nil
}
