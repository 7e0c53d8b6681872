package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	infrapdf "github.com/jhoicas/stock-opname/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-opname/pkg/logger"
)

type uploadFlags struct {
	schema string
	policy string
}

func (f *uploadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.schema, "schema", "", "esquema de columnas: auto | default | legacy")
	cmd.Flags().StringVar(&f.policy, "policy", "", "registros inválidos: fail | skip")
}

func newSummarizeCmd() *cobra.Command {
	var (
		flags  uploadFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "summarize FILE",
		Short: "Totales de nominal selisih y distribución Minus/Sesuai/Plus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, in, err := prepare(args[0], flags)
			if err != nil {
				return err
			}
			report, err := uc.Build(cmd.Context(), in)
			if err != nil {
				return err
			}
			logRejected(newLogger(cmd), report)
			return writeReport(cmd.OutOrStdout(), report, output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "formato: table | json | yaml")
	return cmd
}

func newPDFCmd() *cobra.Command {
	var (
		flags uploadFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "pdf FILE",
		Short: "Genera el dashboard en PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, in, err := prepare(args[0], flags)
			if err != nil {
				return err
			}
			pdfBytes, filename, err := uc.BuildPDF(cmd.Context(), in)
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir PDF: %w", err)
			}
			newLogger(cmd).Debug().Str("file", out).Int("bytes", len(pdfBytes)).Msg("PDF escrito")
			fmt.Fprintf(cmd.OutOrStdout(), "PDF generado: %s (%d bytes)\n", out, len(pdfBytes))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "ruta del PDF (por defecto <archivo>-<fecha>.pdf)")
	return cmd
}

func logRejected(log *logger.Logger, report *dto.OpnameReportDTO) {
	for _, r := range report.Rejected {
		log.Warn().Int("index", r.Index).Str("field", r.Field).Str("reason", r.Reason).Msg("registro rechazado")
	}
	log.Debug().Int("records", report.RecordCount).Int64("grand_total", report.GrandTotal).Msg("reporte generado")
}

// prepare lee el archivo y arma el caso de uso sin archivo de reportes.
func prepare(path string, flags uploadFlags) (*appopname.ReportUseCase, appopname.Upload, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, appopname.Upload{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, appopname.Upload{}, fmt.Errorf("leer %s: %w", path, err)
	}
	uc := appopname.NewReportUseCase(
		appopname.Config{
			CurrencySymbol:     cfg.Opname.CurrencySymbol,
			ThousandsSeparator: cfg.Opname.ThousandsSeparator,
			Schema:             cfg.Opname.Schema,
			Policy:             cfg.Opname.ErrorPolicy,
		},
		nil,
		infrapdf.NewMarotoReportGenerator(),
		nil,
	)
	return uc, appopname.Upload{
		Data:       data,
		SourceName: filepath.Base(path),
		Schema:     flags.schema,
		Policy:     flags.policy,
	}, nil
}

func writeReport(w io.Writer, report *dto.OpnameReportDTO, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAMLSummary(report)); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		return writeTable(w, report)
	default:
		return fmt.Errorf("formato de salida desconocido: %q", format)
	}
}

// yamlSummary deja fuera los registros: sus valores son JSON crudo.
type yamlSummary struct {
	Source      string            `yaml:"source,omitempty"`
	Schema      string            `yaml:"schema"`
	Policy      string            `yaml:"policy"`
	RecordCount int               `yaml:"record_count"`
	Rejected    int               `yaml:"rejected"`
	Totals      map[string]string `yaml:"totals"`
	GrandTotal  int64             `yaml:"grand_total"`
	Status      []yamlStatus      `yaml:"status"`
}

type yamlStatus struct {
	Location string        `yaml:"location"`
	Total    int           `yaml:"total"`
	Rows     []yamlRowItem `yaml:"rows"`
}

type yamlRowItem struct {
	Label   string  `yaml:"label"`
	Count   int     `yaml:"count"`
	Percent float64 `yaml:"percent"`
}

func toYAMLSummary(r *dto.OpnameReportDTO) yamlSummary {
	out := yamlSummary{
		Source:      r.SourceName,
		Schema:      r.Schema,
		Policy:      r.Policy,
		RecordCount: r.RecordCount,
		Rejected:    len(r.Rejected),
		Totals:      make(map[string]string, len(r.Totals)),
		GrandTotal:  r.GrandTotal,
	}
	for _, t := range r.Totals {
		out.Totals[t.SignLabel+" "+t.LocationLabel] = t.Formatted
	}
	for _, table := range r.Status {
		st := yamlStatus{Location: table.LocationLabel, Total: table.Total}
		for _, row := range table.Rows {
			pct, _ := row.Percent.Float64()
			st.Rows = append(st.Rows, yamlRowItem{Label: row.Label, Count: row.Count, Percent: pct})
		}
		out.Status = append(out.Status, st)
	}
	return out
}

func writeTable(w io.Writer, r *dto.OpnameReportDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Archivo:\t%s\n", r.SourceName)
	fmt.Fprintf(tw, "Esquema:\t%s (policy %s)\n", r.Schema, r.Policy)
	fmt.Fprintf(tw, "Registros:\t%d (rechazados %d)\n\n", r.RecordCount, len(r.Rejected))

	fmt.Fprintln(tw, "NOMINAL\tLOKASI\tTOTAL")
	for _, t := range r.Totals {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.SignLabel, t.LocationLabel, t.Formatted)
	}
	fmt.Fprintln(tw)

	for _, table := range r.Status {
		fmt.Fprintf(tw, "SELISIH %s\tJUMLAH\tPERSENTASE\n", table.LocationLabel)
		for _, row := range table.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%s%%\n", row.Label, row.Count, row.Percent.StringFixed(1))
		}
		fmt.Fprintf(tw, "Total\t%d\t\n\n", table.Total)
	}

	for _, rej := range r.Rejected {
		fmt.Fprintf(tw, "rechazado #%d\t%s\t%s\n", rej.Index, rej.Field, rej.Reason)
	}
	return tw.Flush()
}
