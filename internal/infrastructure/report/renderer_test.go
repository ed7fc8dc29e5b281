package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/infrastructure/report"
)

var generated = time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)

func TestInventorySummaryXLSX_FilasYTotales(t *testing.T) {
	r := report.NewRenderer("planta")
	out, err := r.InventorySummaryXLSX(dto.InventorySummaryReport{
		GeneratedAt: generated,
		Rows: []dto.StageSummaryResponse{
			{Stage: "raw", Status: "available", ItemCount: 2, TotalQuantity: 150, TotalValue: decimal.NewFromInt(300)},
			{Stage: "forged", Status: "quarantine", ItemCount: 1, TotalQuantity: 20, TotalValue: decimal.NewFromInt(80)},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Resumen")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Etapa", "Estado", "Partidas", "Cantidad", "Valor"}, rows[2])
	assert.Equal(t, []string{"raw", "available", "2", "150", "300"}, rows[3])
	assert.Equal(t, []string{"Total", "", "3", "170", "380"}, rows[5])
}

func TestInventorySummaryXLSX_SinGrupos(t *testing.T) {
	out, err := report.NewRenderer("planta").InventorySummaryXLSX(dto.InventorySummaryReport{GeneratedAt: generated})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	total, err := f.GetCellValue("Resumen", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestCapacityPDF_GeneraDocumento(t *testing.T) {
	pct := decimal.NewFromInt(50)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rep := dto.CapacityReport{
		From:        from,
		To:          from.Add(24 * time.Hour),
		GeneratedAt: generated,
		Lines: []dto.CapacityReportLine{{
			DivisionName: "Forging",
			Capacity: dto.CapacityResponse{
				LineID: "l1", LineCode: "L1", LineName: "Press Line 1",
				PlannedHours: decimal.NewFromInt(24), LostHours: decimal.NewFromInt(5),
				ForecastHours: decimal.NewFromInt(5), AvailableHours: decimal.NewFromInt(19),
				LossPercent: decimal.RequireFromString("20.83"),
			},
			Downtimes: []dto.DowntimeResponse{{
				ID: "d1", Reason: "Die change", Category: "changeover",
				StartDateTime: from.Add(8 * time.Hour), EndDateTime: from.Add(18 * time.Hour),
				DurationHours: decimal.NewFromInt(10), ImpactType: "partial",
				CapacityReductionPercent: &pct, Status: "approved",
			}},
		}},
	}

	out, err := report.NewRenderer("planta").CapacityPDF(context.Background(), rep)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestCapacityPDF_SinLineas(t *testing.T) {
	out, err := report.NewRenderer("planta").CapacityPDF(context.Background(), dto.CapacityReport{GeneratedAt: generated})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
