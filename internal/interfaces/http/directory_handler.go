package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/directory"
	"github.com/jhoicas/Planta-api/internal/application/dto"
)

// DirectoryHandler plantas, divisiones y líneas.
type DirectoryHandler struct {
	uc *directory.UseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(uc *directory.UseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// ── Plantas ───────────────────────────────────────────────────────────────────

// ListLocations godoc
// @Summary      Listar plantas activas
// @Tags         locations
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *DirectoryHandler) ListLocations(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListLocations(c.Context()))
}

// GetLocation godoc
// @Summary      Obtener planta por ID
// @Tags         locations
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *DirectoryHandler) GetLocation(c *fiber.Ctx) error {
	out, err := h.uc.GetLocation(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateLocation godoc
// @Summary      Crear planta
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "code, name"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *DirectoryHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLocation(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLocation godoc
// @Summary      Modificar planta (parcial)
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la planta"
// @Param        body  body  dto.UpdateLocationRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.LocationResponse
// @Router       /api/locations/{id} [patch]
func (h *DirectoryHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLocation(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *DirectoryHandler) DeactivateLocation(c *fiber.Ctx) error {
	return respond(c, h.uc.DeactivateLocation, c.Params("id"))
}

func (h *DirectoryHandler) ReactivateLocation(c *fiber.Ctx) error {
	return respond(c, h.uc.ReactivateLocation, c.Params("id"))
}

// ── Divisiones ────────────────────────────────────────────────────────────────

// ListDivisions godoc
// @Summary      Listar divisiones activas
// @Tags         divisions
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por planta"
// @Success      200  {array}  dto.DivisionResponse
// @Router       /api/divisions [get]
func (h *DirectoryHandler) ListDivisions(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListDivisions(c.Context(), c.Query("location_id")))
}

func (h *DirectoryHandler) GetDivision(c *fiber.Ctx) error {
	out, err := h.uc.GetDivision(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateDivision godoc
// @Summary      Crear división
// @Tags         divisions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDivisionRequest  true  "location_id, code, name"
// @Success      201   {object}  dto.DivisionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/divisions [post]
func (h *DirectoryHandler) CreateDivision(c *fiber.Ctx) error {
	var in dto.CreateDivisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateDivision(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DirectoryHandler) UpdateDivision(c *fiber.Ctx) error {
	var in dto.UpdateDivisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDivision(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *DirectoryHandler) DeactivateDivision(c *fiber.Ctx) error {
	return respond(c, h.uc.DeactivateDivision, c.Params("id"))
}

func (h *DirectoryHandler) ReactivateDivision(c *fiber.Ctx) error {
	return respond(c, h.uc.ReactivateDivision, c.Params("id"))
}

// ── Líneas ────────────────────────────────────────────────────────────────────

// ListLines godoc
// @Summary      Listar líneas activas
// @Tags         lines
// @Produce      json
// @Param        division_id  query  string  false  "Filtrar por división"
// @Success      200  {array}  dto.LineResponse
// @Router       /api/lines [get]
func (h *DirectoryHandler) ListLines(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListLines(c.Context(), c.Query("division_id")))
}

func (h *DirectoryHandler) GetLine(c *fiber.Ctx) error {
	out, err := h.uc.GetLine(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateLine godoc
// @Summary      Crear línea
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLineRequest  true  "division_id, code, name, hours_per_day"
// @Success      201   {object}  dto.LineResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/lines [post]
func (h *DirectoryHandler) CreateLine(c *fiber.Ctx) error {
	var in dto.CreateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLine(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DirectoryHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLine(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *DirectoryHandler) DeactivateLine(c *fiber.Ctx) error {
	return respond(c, h.uc.DeactivateLine, c.Params("id"))
}

func (h *DirectoryHandler) ReactivateLine(c *fiber.Ctx) error {
	return respond(c, h.uc.ReactivateLine, c.Params("id"))
}
