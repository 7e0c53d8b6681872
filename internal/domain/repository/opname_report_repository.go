package repository

import (
	"context"

	"github.com/jhoicas/stock-opname/internal/domain/entity"
)

// OpnameReportRepository define el puerto de persistencia para los resúmenes archivados.
type OpnameReportRepository interface {
	// Create guarda el resumen y sus filas de distribución en una sola transacción.
	Create(ctx context.Context, report *entity.OpnameReport) error
	// GetByID devuelve (nil, nil) si el reporte no existe.
	GetByID(ctx context.Context, id string) (*entity.OpnameReport, error)
	// List devuelve los reportes más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.OpnameReport, error)
}
