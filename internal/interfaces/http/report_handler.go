package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/report"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReportHandler descargas de informes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventorySummary godoc
// @Summary      Resumen de inventario en XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory-summary.xlsx [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	out, name, err := h.uc.InventorySummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return download(c, out, name, mimeXLSX)
}

// Capacity godoc
// @Summary      Informe de capacidad de líneas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        from  query  string  true  "Inicio (RFC 3339)"
// @Param        to    query  string  true  "Fin (RFC 3339)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/capacity.pdf [get]
func (h *ReportHandler) Capacity(c *fiber.Ctx) error {
	from, to, err := queryWindow(c)
	if err != nil {
		return writeError(c, err)
	}
	out, name, err := h.uc.Capacity(c.Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return download(c, out, name, mimePDF)
}

func download(c *fiber.Ctx, body []byte, filename, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
