// Package report arma los informes descargables (resumen de inventario y capacidad de líneas)
// a partir de los casos de uso de inventario, directorio y paradas.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// Renderer convierte los informes en bytes (XLSX / PDF).
type Renderer interface {
	InventorySummaryXLSX(rep dto.InventorySummaryReport) ([]byte, error)
	CapacityPDF(ctx context.Context, rep dto.CapacityReport) ([]byte, error)
}

// SummarySource totales de inventario por etapa y estado.
type SummarySource interface {
	GetSummary(ctx context.Context) []dto.StageSummaryResponse
}

// LineSource líneas activas del directorio.
type LineSource interface {
	ListLines(ctx context.Context, divisionID string) []dto.LineResponse
}

// CapacitySource capacidad y paradas por línea.
type CapacitySource interface {
	Capacity(ctx context.Context, lineID string, from, to time.Time) (*dto.CapacityResponse, error)
	List(ctx context.Context, f dto.DowntimeListFilter) []dto.DowntimeResponse
}

// UseCase genera los informes.
type UseCase struct {
	summary   SummarySource
	lines     LineSource
	downtimes CapacitySource
	renderer  Renderer
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(summary SummarySource, lines LineSource, downtimes CapacitySource, renderer Renderer, log *logger.Logger) *UseCase {
	return &UseCase{
		summary:   summary,
		lines:     lines,
		downtimes: downtimes,
		renderer:  renderer,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// InventorySummary devuelve el XLSX y su nombre de archivo.
func (uc *UseCase) InventorySummary(ctx context.Context) ([]byte, string, error) {
	now := uc.now()
	rep := dto.InventorySummaryReport{GeneratedAt: now, Rows: uc.summary.GetSummary(ctx)}
	out, err := uc.renderer.InventorySummaryXLSX(rep)
	if err != nil {
		return nil, "", fmt.Errorf("report: resumen de inventario: %w", err)
	}
	uc.log.Info().Int("groups", len(rep.Rows)).Msg("informe de inventario generado")
	return out, "inventario-resumen-" + now.Format("20060102") + ".xlsx", nil
}

// Capacity construye el informe de capacidad de las líneas activas y devuelve el PDF.
func (uc *UseCase) Capacity(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	rep, err := uc.BuildCapacity(ctx, from, to)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.renderer.CapacityPDF(ctx, *rep)
	if err != nil {
		return nil, "", fmt.Errorf("report: capacidad: %w", err)
	}
	uc.log.Info().Int("lines", len(rep.Lines)).Msg("informe de capacidad generado")
	name := fmt.Sprintf("capacidad-%s-%s.pdf", rep.From.Format("20060102"), rep.To.Format("20060102"))
	return out, name, nil
}

// BuildCapacity datos del informe sin renderizar; lo usa también la CLI.
func (uc *UseCase) BuildCapacity(ctx context.Context, from, to time.Time) (*dto.CapacityReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, domain.NewValidationError("from", "es obligatorio junto con to")
	}
	from, to = from.UTC(), to.UTC()
	rep := &dto.CapacityReport{From: from, To: to, GeneratedAt: uc.now()}
	for _, l := range uc.lines.ListLines(ctx, "") {
		c, err := uc.downtimes.Capacity(ctx, l.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("report: capacidad de %s: %w", l.Code, err)
		}
		rep.Lines = append(rep.Lines, dto.CapacityReportLine{
			Capacity:     *c,
			DivisionName: l.DivisionName,
			Downtimes:    uc.downtimes.List(ctx, dto.DowntimeListFilter{LineID: l.ID, From: &from, To: &to}),
		})
	}
	return rep, nil
}
