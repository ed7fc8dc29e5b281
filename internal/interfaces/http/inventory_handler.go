package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
)

// InventoryHandler existencias por etapa y su libro de movimientos.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar existencias
// @Tags         inventory
// @Produce      json
// @Param        stage        query  string  false  "raw | forged | heat_treated | machined | finished"
// @Param        status       query  string  false  "available | reserved | quarantine | rejected"
// @Param        location_id  query  string  false  "Planta"
// @Param        part_id      query  string  false  "Pieza"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var f dto.InventoryListFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(f); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.List(c.Context(), f))
}

// Create godoc
// @Summary      Alta de existencia
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "part_id, stage, quantity, location_id"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	return respond(c, h.uc.Get, c.Params("id"))
}

// Update godoc
// @Summary      Modificar existencia (parcial); cantidad y estado solo vía adjust/status
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InventoryResponse
// @Router       /api/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar cantidad (delta con signo) y registrar el movimiento
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id         path    string                  true  "ID"
// @Param        X-User-ID  header  string                  true  "Actor"
// @Param        body       body    dto.AdjustStockRequest  true  "delta, reason"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.UserID = GetUserID(c)
	out, err := h.uc.AdjustStock(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de calidad
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id         path    string                   true  "ID"
// @Param        X-User-ID  header  string                   true  "Actor"
// @Param        body       body    dto.ChangeStatusRequest  true  "status, reason"
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/inventory/{id}/status [post]
func (h *InventoryHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.UserID = GetUserID(c)
	out, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	return respond(c, h.uc.Reconcile, c.Params("id"))
}

// Summary godoc
// @Summary      Totales por etapa y estado
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.StageSummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.Context()))
}

// Transactions godoc
// @Summary      Últimos movimientos del libro (máx. 100)
// @Tags         inventory
// @Produce      json
// @Param        inventory_id  query  string  false  "Filtrar por existencia"
// @Success      200  {array}  dto.InventoryTransactionResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetTransactions(c.Context(), c.Query("inventory_id")))
}
