package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/downtime"
	"github.com/jhoicas/Planta-api/internal/application/dto"
)

// DowntimeHandler paradas de línea e impacto sobre la capacidad.
type DowntimeHandler struct {
	uc *downtime.UseCase
}

// NewDowntimeHandler construye el handler.
func NewDowntimeHandler(uc *downtime.UseCase) *DowntimeHandler {
	return &DowntimeHandler{uc: uc}
}

// List godoc
// @Summary      Listar paradas
// @Tags         downtimes
// @Produce      json
// @Param        line_id            query  string  false  "Línea"
// @Param        from               query  string  false  "Inicio de ventana (RFC 3339)"
// @Param        to                 query  string  false  "Fin de ventana (RFC 3339)"
// @Param        status             query  string  false  "pending | approved | cancelled"
// @Param        include_cancelled  query  bool    false  "Incluir canceladas"
// @Param        limit              query  int     false  "Límite"
// @Param        offset             query  int     false  "Offset"
// @Success      200  {array}  dto.DowntimeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/downtimes [get]
func (h *DowntimeHandler) List(c *fiber.Ctx) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return writeError(c, err)
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return writeError(c, err)
	}
	f := dto.DowntimeListFilter{
		LineID:           c.Query("line_id"),
		From:             from,
		To:               to,
		Status:           c.Query("status"),
		IncludeCancelled: c.QueryBool("include_cancelled", false),
		Limit:            c.QueryInt("limit", 0),
		Offset:           c.QueryInt("offset", 0),
	}
	if err := dto.Validate(f); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.List(c.Context(), f))
}

// Create godoc
// @Summary      Registrar parada (queda pending)
// @Tags         downtimes
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                     true  "Actor"
// @Param        body       body    dto.CreateDowntimeRequest  true  "Datos de la parada"
// @Success      201  {object}  dto.DowntimeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/downtimes [post]
func (h *DowntimeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDowntimeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.CreatedBy = GetUserID(c)
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DowntimeHandler) Get(c *fiber.Ctx) error {
	return respond(c, h.uc.Get, c.Params("id"))
}

// Update godoc
// @Summary      Modificar parada (parcial); las canceladas no se modifican
// @Tags         downtimes
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la parada"
// @Param        body  body  dto.UpdateDowntimeRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.DowntimeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/downtimes/{id} [patch]
func (h *DowntimeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDowntimeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar parada pendiente
// @Tags         downtimes
// @Produce      json
// @Param        id         path    string  true  "ID de la parada"
// @Param        X-User-ID  header  string  true  "Aprobador"
// @Success      200  {object}  dto.DowntimeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/downtimes/{id}/approve [post]
func (h *DowntimeHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *DowntimeHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Impact godoc
// @Summary      Horas perdidas (aprobadas) y previstas de una línea
// @Tags         lines
// @Produce      json
// @Param        id    path   string  true  "ID de la línea"
// @Param        from  query  string  true  "Inicio (RFC 3339)"
// @Param        to    query  string  true  "Fin (RFC 3339)"
// @Success      200  {object}  dto.ImpactResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lines/{id}/impact [get]
func (h *DowntimeHandler) Impact(c *fiber.Ctx) error {
	from, to, err := queryWindow(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Impact(c.Context(), c.Params("id"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Capacity godoc
// @Summary      Capacidad planificada frente a perdida
// @Tags         lines
// @Produce      json
// @Param        id    path   string  true  "ID de la línea"
// @Param        from  query  string  true  "Inicio (RFC 3339)"
// @Param        to    query  string  true  "Fin (RFC 3339)"
// @Success      200  {object}  dto.CapacityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lines/{id}/capacity [get]
func (h *DowntimeHandler) Capacity(c *fiber.Ctx) error {
	from, to, err := queryWindow(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Capacity(c.Context(), c.Params("id"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
