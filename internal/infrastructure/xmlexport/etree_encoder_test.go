package xmlexport_test

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	"github.com/jhoicas/stock-opname/internal/infrastructure/xmlexport"
)

const data = `[
  {"store_counted_on": "2024-01-01", "store_discrepancy": -2, "minus_store_raw": "Rp2,000", "plus_store_raw": "Rp0",
   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"},
  {"store_counted_on": "2024-01-01", "store_discrepancy": 1, "minus_store_raw": "Rp?", "plus_store_raw": "Rp0",
   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}
]`

func TestEncodeReportXML(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{Policy: "skip"}, nil, nil, xmlexport.NewEtreeEncoder(2))

	out, err := uc.BuildXML(context.Background(), appopname.Upload{Data: []byte(data)})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("StockOpnameReport")
	require.NotNil(t, root)
	assert.Equal(t, "1", root.SelectAttrValue("records", ""))

	totals := root.FindElements("./Totals/Total")
	require.Len(t, totals, 4)
	assert.Equal(t, "2000", totals[0].Text())
	assert.Equal(t, "Rp2,000", totals[0].SelectAttrValue("formatted", ""))

	neg := root.FindElement("./Distribution[@location='store']/Status[@name='Negative']")
	require.NotNil(t, neg)
	assert.Equal(t, "1", neg.Text())
	assert.Equal(t, "100.0", neg.SelectAttrValue("percent", ""))

	rejected := root.FindElements("./Rejected/Record")
	require.Len(t, rejected, 1)
	assert.Equal(t, "minus_store_raw", rejected[0].SelectAttrValue("field", ""))
}

func TestEncodeReportXML_SinReporte(t *testing.T) {
	_, err := xmlexport.NewEtreeEncoder(0).EncodeReportXML(nil)
	assert.Error(t, err)
}
