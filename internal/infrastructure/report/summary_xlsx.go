// Package report renderiza los informes de planta: resumen de inventario en XLSX (excelize)
// y capacidad de líneas en PDF (maroto v2).
package report

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
)

const summarySheet = "Resumen"

var summaryHeadings = []string{"Etapa", "Estado", "Partidas", "Cantidad", "Valor"}

// InventorySummaryXLSX una fila por grupo (etapa, estado) y una fila final de totales.
func (r *Renderer) InventorySummaryXLSX(rep dto.InventorySummaryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetCellValue(summarySheet, "A1", "Generado: "+rep.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")); err != nil {
		return nil, err
	}
	for i, h := range summaryHeadings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A3", "E3", bold); err != nil {
		return nil, err
	}

	var (
		items int
		qty   int64
		value = decimal.Zero
	)
	rowNo := 4
	for _, g := range rep.Rows {
		values := []any{g.Stage, g.Status, g.ItemCount, g.TotalQuantity, g.TotalValue.InexactFloat64()}
		if err := setRow(f, rowNo, values); err != nil {
			return nil, err
		}
		items += g.ItemCount
		qty += g.TotalQuantity
		value = value.Add(g.TotalValue)
		rowNo++
	}
	if err := setRow(f, rowNo, []any{"Total", "", items, qty, value.InexactFloat64()}); err != nil {
		return nil, err
	}
	start, _ := excelize.CoordinatesToCellName(1, rowNo)
	end, _ := excelize.CoordinatesToCellName(len(summaryHeadings), rowNo)
	if err := f.SetCellStyle(summarySheet, start, end, bold); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(summarySheet, "A", "B", 16)
	_ = f.SetColWidth(summarySheet, "C", "E", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(summarySheet, cell, &values)
}
