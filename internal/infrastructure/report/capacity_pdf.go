package report

//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Informe de capacidad  │  Ventana + fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Línea | División | Plan | Perdidas | Prev. | Disp.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR LÍNEA: paradas aprobadas/pendientes de la ventana      │
//	└─────────────────────────────────────────────────────────────┘

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const dateLayout = "02/01/2006 15:04"

// alertLoss pérdida de capacidad (%) a partir de la cual la fila se resalta.
var alertLoss = decimal.NewFromInt(20)

// Renderer implementa report.Renderer (XLSX + PDF).
type Renderer struct {
	author string
}

// NewRenderer construye el renderizador; author aparece en los metadatos del PDF.
func NewRenderer(author string) *Renderer { return &Renderer{author: author} }

// CapacityPDF genera el informe de capacidad y devuelve sus bytes.
func (r *Renderer) CapacityPDF(_ context.Context, rep dto.CapacityReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de capacidad de líneas", true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, l := range rep.Lines {
		m.AddRows(capacityRow(l))
	}
	if len(rep.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin líneas activas.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}

	for _, l := range rep.Lines {
		if len(l.Downtimes) == 0 {
			continue
		}
		m.AddRows(line.NewRow(4))
		m.AddRows(downtimeRows(l)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep dto.CapacityReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("INFORME DE CAPACIDAD", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ventana: %s - %s", rep.From.Format(dateLayout), rep.To.Format(dateLayout)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+rep.GeneratedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Línea", 3, align.Left),
		h("División", 2, align.Left),
		h("Plan (h)", 1, align.Right),
		h("Perdidas (h)", 2, align.Right),
		h("Previstas (h)", 2, align.Right),
		h("Disp. (h)", 1, align.Right),
		h("% pérdida", 1, align.Right),
	)
}

func capacityRow(l dto.CapacityReportLine) core.Row {
	c := l.Capacity
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	lossProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if c.LossPercent.GreaterThanOrEqual(alertLoss) {
		lossProps.Color = colorAlert
		lossProps.Style = fontstyle.Bold
	}
	return row.New(7).Add(
		cell(c.LineCode+" "+c.LineName, 3, align.Left),
		cell(l.DivisionName, 2, align.Left),
		cell(c.PlannedHours.StringFixed(2), 1, align.Right),
		cell(c.LostHours.StringFixed(2), 2, align.Right),
		cell(c.ForecastHours.StringFixed(2), 2, align.Right),
		cell(c.AvailableHours.StringFixed(2), 1, align.Right),
		col.New(1).Add(text.New(c.LossPercent.StringFixed(1)+"%", lossProps)),
	)
}

func downtimeRows(l dto.CapacityReportLine) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Paradas "+l.Capacity.LineCode, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, d := range l.Downtimes {
		impact := d.ImpactType
		if d.CapacityReductionPercent != nil {
			impact += " " + d.CapacityReductionPercent.StringFixed(0) + "%"
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(d.StartDateTime.Format(dateLayout)+" - "+d.EndDateTime.Format(dateLayout),
				props.Text{Size: 7, Top: 0.5, Left: 2})),
			col.New(4).Add(text.New(nonEmpty(d.Reason, "-"), props.Text{Size: 7, Top: 0.5})),
			col.New(2).Add(text.New(d.Category, props.Text{Size: 7, Top: 0.5, Color: colorGray})),
			col.New(1).Add(text.New(d.DurationHours.StringFixed(2)+" h", props.Text{Size: 7, Top: 0.5, Align: align.Right})),
			col.New(1).Add(text.New(impact, props.Text{Size: 7, Top: 0.5, Align: align.Center})),
			col.New(1).Add(text.New(d.Status, props.Text{Size: 7, Top: 0.5, Align: align.Right, Color: colorGray})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
