package opname

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/internal/domain/entity"
	domopname "github.com/jhoicas/stock-opname/internal/domain/opname"
)

func toTotalsDTO(t domopname.TotalsTable, n domopname.Normalizer) []dto.NominalTotalDTO {
	out := make([]dto.NominalTotalDTO, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, nominalTotal(r.Location, r.Sign, r.Nominal, n))
	}
	return out
}

func nominalTotal(loc domopname.Location, sign domopname.Sign, nominal int64, n domopname.Normalizer) dto.NominalTotalDTO {
	return dto.NominalTotalDTO{
		Location:      string(loc),
		LocationLabel: loc.Label(),
		Sign:          string(sign),
		SignLabel:     sign.Label(),
		Nominal:       nominal,
		Formatted:     n.Format(nominal),
	}
}

func toStatusDTO(tables map[domopname.Location]domopname.StatusTable) []dto.StatusTableDTO {
	out := make([]dto.StatusTableDTO, 0, len(domopname.Locations))
	for _, loc := range domopname.Locations {
		t := tables[loc]
		table := dto.StatusTableDTO{
			Location:      string(loc),
			LocationLabel: loc.Label(),
			Total:         t.Total,
			Rows:          make([]dto.StatusRowDTO, 0, len(t.Rows)),
		}
		for _, r := range t.Rows {
			table.Rows = append(table.Rows, dto.StatusRowDTO{
				Status:  string(r.Status),
				Label:   r.Status.Label(),
				Count:   r.Count,
				Percent: r.Percent,
			})
		}
		out = append(out, table)
	}
	return out
}

func toRecordsDTO(records []*domopname.Record) []*orderedmap.OrderedMap[string, json.RawMessage] {
	out := make([]*orderedmap.OrderedMap[string, json.RawMessage], 0, len(records))
	for _, r := range records {
		out = append(out, r.Fields)
	}
	return out
}

func toRejectedDTO(rejected []*domain.RecordError) []dto.RejectedRecordDTO {
	out := make([]dto.RejectedRecordDTO, 0, len(rejected))
	for _, e := range rejected {
		out = append(out, dto.RejectedRecordDTO{Index: e.Index, Field: e.Field, Reason: e.Err.Error()})
	}
	return out
}

// toSummaryDTO reconstruye las tablas de resumen a partir de un reporte archivado.
func toSummaryDTO(rep *entity.OpnameReport, n domopname.Normalizer) dto.OpnameReportSummaryDTO {
	totals := []dto.NominalTotalDTO{
		nominalTotal(domopname.LocationStore, domopname.SignMinus, rep.StoreMinus, n),
		nominalTotal(domopname.LocationStore, domopname.SignPlus, rep.StorePlus, n),
		nominalTotal(domopname.LocationWarehouse, domopname.SignMinus, rep.WarehouseMinus, n),
		nominalTotal(domopname.LocationWarehouse, domopname.SignPlus, rep.WarehousePlus, n),
	}

	status := make([]dto.StatusTableDTO, 0, len(domopname.Locations))
	for _, loc := range domopname.Locations {
		table := dto.StatusTableDTO{Location: string(loc), LocationLabel: loc.Label()}
		for _, row := range rep.Status {
			if row.Location != string(loc) {
				continue
			}
			table.Total += row.Count
			table.Rows = append(table.Rows, dto.StatusRowDTO{
				Status:  row.Status,
				Label:   domopname.Status(row.Status).Label(),
				Count:   row.Count,
				Percent: row.Percent,
			})
		}
		status = append(status, table)
	}

	return dto.OpnameReportSummaryDTO{
		ID:            rep.ID,
		SourceName:    rep.SourceName,
		Schema:        rep.Schema,
		RecordCount:   rep.RecordCount,
		RejectedCount: rep.RejectedCount,
		Totals:        totals,
		GrandTotal:    rep.StoreMinus + rep.StorePlus + rep.WarehouseMinus + rep.WarehousePlus,
		Status:        status,
		CreatedBy:     rep.CreatedBy,
		CreatedAt:     rep.CreatedAt,
	}
}
