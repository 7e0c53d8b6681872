// Package xmlexport serializa el resumen de stock opname en XML para los
// sistemas de inventario que solo importan ese formato.
//
//	<StockOpnameReport schema="default" records="2" generatedAt="...">
//	  <Totals grandTotal="2000">
//	    <Total location="store" sign="minus" formatted="Rp2,000">2000</Total>
//	  </Totals>
//	  <Distribution location="store" total="1">
//	    <Status name="Negative" label="Minus" percent="100.0">1</Status>
//	  </Distribution>
//	  <Rejected><Record index="3" field="minus_store_raw">...</Record></Rejected>
//	</StockOpnameReport>
package xmlexport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
)

var _ appopname.ReportXMLEncoder = (*EtreeEncoder)(nil)

// EtreeEncoder implementa opname.ReportXMLEncoder con beevik/etree.
type EtreeEncoder struct {
	indent int
}

// NewEtreeEncoder construye el encoder; indent <= 0 genera XML compacto.
func NewEtreeEncoder(indent int) *EtreeEncoder { return &EtreeEncoder{indent: indent} }

// EncodeReportXML escribe totales, distribuciones y rechazados. Los registros no se incluyen.
func (e *EtreeEncoder) EncodeReportXML(view *appopname.ReportView) ([]byte, error) {
	if view == nil || view.Report == nil {
		return nil, fmt.Errorf("xml: reporte vacío")
	}
	report := view.Report

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockOpnameReport")
	if report.ID != "" {
		root.CreateAttr("id", report.ID)
	}
	root.CreateAttr("schema", report.Schema)
	root.CreateAttr("policy", report.Policy)
	root.CreateAttr("records", strconv.Itoa(report.RecordCount))
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	if report.SourceName != "" {
		root.CreateAttr("source", report.SourceName)
	}

	totals := root.CreateElement("Totals")
	totals.CreateAttr("grandTotal", strconv.FormatInt(report.GrandTotal, 10))
	for _, t := range report.Totals {
		el := totals.CreateElement("Total")
		el.CreateAttr("location", t.Location)
		el.CreateAttr("sign", t.Sign)
		el.CreateAttr("formatted", t.Formatted)
		el.SetText(strconv.FormatInt(t.Nominal, 10))
	}

	for _, table := range report.Status {
		dist := root.CreateElement("Distribution")
		dist.CreateAttr("location", table.Location)
		dist.CreateAttr("total", strconv.Itoa(table.Total))
		for _, r := range table.Rows {
			el := dist.CreateElement("Status")
			el.CreateAttr("name", r.Status)
			el.CreateAttr("label", r.Label)
			el.CreateAttr("percent", r.Percent.StringFixed(1))
			el.SetText(strconv.Itoa(r.Count))
		}
	}

	if len(report.Rejected) > 0 {
		rejected := root.CreateElement("Rejected")
		for _, r := range report.Rejected {
			el := rejected.CreateElement("Record")
			el.CreateAttr("index", strconv.Itoa(r.Index))
			el.CreateAttr("field", r.Field)
			el.SetText(r.Reason)
		}
	}

	if e.indent > 0 {
		doc.Indent(e.indent)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
