package opname

import "context"

// ReportPDFGenerator genera el PDF del dashboard de stock opname.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, view *ReportView) ([]byte, error)
}

// ReportXMLEncoder serializa el resumen del reporte en XML.
type ReportXMLEncoder interface {
	EncodeReportXML(view *ReportView) ([]byte, error)
}
