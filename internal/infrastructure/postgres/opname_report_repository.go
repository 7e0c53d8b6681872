package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-opname/internal/domain/entity"
	"github.com/jhoicas/stock-opname/internal/domain/repository"
)

var _ repository.OpnameReportRepository = (*OpnameReportRepo)(nil)

// OpnameReportRepo implementación del puerto OpnameReportRepository sobre PostgreSQL.
type OpnameReportRepo struct {
	pool *pgxpool.Pool
}

// NewOpnameReportRepository construye el adaptador de persistencia para reportes de opname.
func NewOpnameReportRepository(pool *pgxpool.Pool) *OpnameReportRepo {
	return &OpnameReportRepo{pool: pool}
}

const (
	reportColumns = `id, source_name, schema_name, record_count, rejected_count,
	store_minus, store_plus, warehouse_minus, warehouse_plus, created_by, created_at`
	reportSelect = `id::TEXT, source_name, schema_name, record_count, rejected_count,
	store_minus, store_plus, warehouse_minus, warehouse_plus, created_by, created_at`
)

// Create persiste el resumen y su distribución en una transacción.
func (r *OpnameReportRepo) Create(ctx context.Context, rep *entity.OpnameReport) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO opname_reports (`+reportColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			rep.ID, rep.SourceName, rep.Schema, rep.RecordCount, rep.RejectedCount,
			rep.StoreMinus, rep.StorePlus, rep.WarehouseMinus, rep.WarehousePlus,
			rep.CreatedBy, rep.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("insert opname report: id %s duplicado: %w", rep.ID, err)
			}
			return fmt.Errorf("insert opname report: %w", err)
		}

		batch := &pgx.Batch{}
		for _, s := range rep.Status {
			batch.Queue(`
				INSERT INTO opname_report_status (report_id, location, status, item_count, percent)
				VALUES ($1, $2, $3, $4, $5)`,
				rep.ID, s.Location, s.Status, s.Count, s.Percent,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert opname status: %w", err)
		}
		return nil
	})
}

// GetByID obtiene un reporte con su distribución.
func (r *OpnameReportRepo) GetByID(ctx context.Context, id string) (*entity.OpnameReport, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reportSelect+` FROM opname_reports WHERE id = $1`, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opname report: %w", err)
	}
	if err := r.loadStatus(ctx, []*entity.OpnameReport{rep}); err != nil {
		return nil, err
	}
	return rep, nil
}

// List devuelve los reportes ordenados por fecha de creación descendente.
func (r *OpnameReportRepo) List(ctx context.Context, limit, offset int) ([]*entity.OpnameReport, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reportSelect+`
		FROM opname_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list opname reports: %w", err)
	}
	defer rows.Close()

	var list []*entity.OpnameReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opname report: %w", err)
		}
		list = append(list, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list opname reports: %w", err)
	}
	if err := r.loadStatus(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadStatus carga la distribución de todos los reportes con una sola consulta.
func (r *OpnameReportRepo) loadStatus(ctx context.Context, reports []*entity.OpnameReport) error {
	if len(reports) == 0 {
		return nil
	}
	ids := make([]string, 0, len(reports))
	byID := make(map[string]*entity.OpnameReport, len(reports))
	for _, rep := range reports {
		ids = append(ids, rep.ID)
		byID[rep.ID] = rep
	}

	rows, err := r.pool.Query(ctx, `
		SELECT report_id::TEXT, location, status, item_count, percent
		FROM opname_report_status
		WHERE report_id::TEXT = ANY($1)
		ORDER BY report_id,
		         CASE location WHEN 'store' THEN 0 ELSE 1 END,
		         CASE status WHEN 'Negative' THEN 0 WHEN 'Zero' THEN 1 ELSE 2 END`, ids)
	if err != nil {
		return fmt.Errorf("get opname status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reportID string
		var s entity.OpnameStatusCount
		if err := rows.Scan(&reportID, &s.Location, &s.Status, &s.Count, &s.Percent); err != nil {
			return fmt.Errorf("scan opname status: %w", err)
		}
		if rep, ok := byID[reportID]; ok {
			rep.Status = append(rep.Status, s)
		}
	}
	return rows.Err()
}

func scanReport(row pgx.Row) (*entity.OpnameReport, error) {
	var rep entity.OpnameReport
	err := row.Scan(
		&rep.ID, &rep.SourceName, &rep.Schema, &rep.RecordCount, &rep.RejectedCount,
		&rep.StoreMinus, &rep.StorePlus, &rep.WarehouseMinus, &rep.WarehousePlus,
		&rep.CreatedBy, &rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
