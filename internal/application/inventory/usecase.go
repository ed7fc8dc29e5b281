// Package inventory libro de existencias por etapa de manufactura: cada cambio de cantidad
// o de estado queda registrado como un movimiento inmutable en la misma unidad atómica.
package inventory

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	stock "github.com/jhoicas/Planta-api/internal/domain/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// MaxTransactions tope de movimientos devueltos por GetTransactions.
const MaxTransactions = 100

// Options reglas configurables del libro.
type Options struct {
	AllowNegativeStock bool
}

// Directory lookups de la jerarquía para validar referencias.
type Directory struct {
	Locations repository.LocationRepository
	Divisions repository.DivisionRepository
	Lines     repository.LineRepository
}

// UseCase casos de uso del libro de inventario.
type UseCase struct {
	invRepo  repository.InventoryRepository
	txnRepo  repository.InventoryTransactionRepository
	txRunner TxRunner
	locker   Locker
	dir      Directory
	opts     Options
	log      *logger.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	invRepo repository.InventoryRepository,
	txnRepo repository.InventoryTransactionRepository,
	txRunner TxRunner,
	locker Locker,
	dir Directory,
	opts Options,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		invRepo:  invRepo,
		txnRepo:  txnRepo,
		txRunner: txRunner,
		locker:   locker,
		dir:      dir,
		opts:     opts,
		log:      log,
		metrics:  metrics.Default(),
		tracer:   otel.Tracer("planta/inventory"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create da de alta una existencia con su cantidad inicial (>= 0). Status vacío = available.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "debe ser >= 0")
	}
	if in.ValuationRate != nil && in.ValuationRate.IsNegative() {
		return nil, domain.NewValidationError("valuation_rate", "no puede ser negativa")
	}
	status := entity.InventoryStatus(in.Status)
	if status == "" {
		status = entity.StatusAvailable
	}
	if err := uc.checkRefs(ctx, in.LocationID, in.DivisionID, in.LineID); err != nil {
		return nil, err
	}

	now := uc.now()
	inv := &entity.Inventory{
		PartID:          in.PartID,
		DieID:           in.DieID,
		RawMaterialCode: in.RawMaterialCode,
		Stage:           entity.Stage(in.Stage),
		Status:          status,
		Quantity:        in.Quantity,
		OpeningQuantity: in.Quantity,
		LocationID:      in.LocationID,
		DivisionID:      in.DivisionID,
		LineID:          in.LineID,
		LotNumber:       in.LotNumber,
		BatchNumber:     in.BatchNumber,
		ExpiryDate:      utcPtr(in.ExpiryDate),
		ValuationRate:   in.ValuationRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return uc.Get(ctx, inv.ID)
}

// Update reescribe los campos descriptivos enviados. Sin campos no escribe nada.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Empty() {
		return toInventoryResponse(inv), nil
	}
	if in.ValuationRate != nil && in.ValuationRate.IsNegative() {
		return nil, domain.NewValidationError("valuation_rate", "no puede ser negativa")
	}

	if in.PartID != nil {
		inv.PartID = *in.PartID
	}
	if in.DieID != nil {
		inv.DieID = in.DieID
	}
	if in.RawMaterialCode != nil {
		inv.RawMaterialCode = in.RawMaterialCode
	}
	if in.Stage != nil {
		inv.Stage = entity.Stage(*in.Stage)
	}
	if in.LocationID != nil {
		inv.LocationID = *in.LocationID
	}
	if in.DivisionID != nil {
		inv.DivisionID = in.DivisionID
	}
	if in.LineID != nil {
		inv.LineID = in.LineID
	}
	if in.LotNumber != nil {
		inv.LotNumber = in.LotNumber
	}
	if in.BatchNumber != nil {
		inv.BatchNumber = in.BatchNumber
	}
	if in.ExpiryDate != nil {
		inv.ExpiryDate = utcPtr(in.ExpiryDate)
	}
	if in.ValuationRate != nil {
		inv.ValuationRate = in.ValuationRate
	}
	if err := uc.checkRefs(ctx, inv.LocationID, inv.DivisionID, inv.LineID); err != nil {
		return nil, err
	}
	inv.UpdatedAt = uc.now()
	if err := uc.invRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Get obtiene una existencia con el nombre de su planta.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// List existencias filtradas. Ante un fallo del almacén devuelve lista vacía.
func (uc *UseCase) List(ctx context.Context, f dto.InventoryListFilter) []dto.InventoryResponse {
	list, err := uc.invRepo.List(ctx, repository.InventoryFilter{
		Stage:      entity.Stage(f.Stage),
		Status:     entity.InventoryStatus(f.Status),
		LocationID: f.LocationID,
		PartID:     f.PartID,
	})
	if err != nil {
		uc.degraded("list_inventory", err)
		return []dto.InventoryResponse{}
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInventoryResponse(inv))
	}
	return out
}

// GetSummary totales por (etapa, estado) en orden ascendente; sin tarifa el valor cuenta como cero.
// Inventario vacío o fallo del almacén devuelven lista vacía.
func (uc *UseCase) GetSummary(ctx context.Context) []dto.StageSummaryResponse {
	list, err := uc.invRepo.List(ctx, repository.InventoryFilter{})
	if err != nil {
		uc.degraded("inventory_summary", err)
		return []dto.StageSummaryResponse{}
	}
	groups := stock.Summarize(list)
	out := make([]dto.StageSummaryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.StageSummaryResponse{
			Stage:         string(g.Stage),
			Status:        string(g.Status),
			ItemCount:     g.ItemCount,
			TotalQuantity: g.TotalQuantity,
			TotalValue:    g.TotalValue,
		})
	}
	return out
}

// GetTransactions últimos movimientos (de una existencia o de todas), más reciente primero, máximo 100.
func (uc *UseCase) GetTransactions(ctx context.Context, inventoryID string) []dto.InventoryTransactionResponse {
	list, err := uc.txnRepo.ListRecent(ctx, inventoryID, MaxTransactions)
	if err != nil {
		uc.degraded("inventory_transactions", err)
		return []dto.InventoryTransactionResponse{}
	}
	out := make([]dto.InventoryTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

// Reconcile compara la cantidad registrada con la apertura más la suma de movimientos.
func (uc *UseCase) Reconcile(ctx context.Context, id string) (*dto.ReconcileResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	txs, err := uc.txnRepo.ListByInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	drift := stock.Drift(inv, txs)
	if drift != 0 {
		uc.log.Warn().Str("inventory_id", id).Int64("drift", drift).Msg("existencia descuadrada con el libro")
	}
	return &dto.ReconcileResponse{
		InventoryID:      id,
		Quantity:         inv.Quantity,
		OpeningQuantity:  inv.OpeningQuantity,
		LedgerTotal:      inv.Quantity - drift,
		TransactionCount: len(txs),
		Drift:            drift,
		Balanced:         drift == 0,
	}, nil
}

func (uc *UseCase) get(ctx context.Context, id string) (*entity.Inventory, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory %s: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

// checkRefs la planta es obligatoria; división y línea solo si vienen informadas.
func (uc *UseCase) checkRefs(ctx context.Context, locationID string, divisionID, lineID *string) error {
	loc, err := uc.dir.Locations.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return &domain.ReferentialError{Field: "location_id", ID: locationID}
	}
	if divisionID != nil && *divisionID != "" {
		d, err := uc.dir.Divisions.GetByID(ctx, *divisionID)
		if err != nil {
			return err
		}
		if d == nil {
			return &domain.ReferentialError{Field: "division_id", ID: *divisionID}
		}
	}
	if lineID != nil && *lineID != "" {
		l, err := uc.dir.Lines.GetByID(ctx, *lineID)
		if err != nil {
			return err
		}
		if l == nil {
			return &domain.ReferentialError{Field: "line_id", ID: *lineID}
		}
	}
	return nil
}

func (uc *UseCase) degraded(op string, err error) {
	uc.metrics.DegradedReads.WithLabelValues(op).Inc()
	uc.log.Warn().Err(err).Str("op", op).Msg("lectura de inventario degradada a vacío")
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:              inv.ID,
		PartID:          inv.PartID,
		DieID:           inv.DieID,
		RawMaterialCode: inv.RawMaterialCode,
		Stage:           string(inv.Stage),
		Status:          string(inv.Status),
		Quantity:        inv.Quantity,
		LocationID:      inv.LocationID,
		LocationName:    inv.LocationName,
		LocationCode:    inv.LocationCode,
		DivisionID:      inv.DivisionID,
		LineID:          inv.LineID,
		LotNumber:       inv.LotNumber,
		BatchNumber:     inv.BatchNumber,
		ExpiryDate:      inv.ExpiryDate,
		ValuationRate:   inv.ValuationRate,
		Value:           inv.Value(),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func toTransactionResponse(t *entity.InventoryTransaction) dto.InventoryTransactionResponse {
	return dto.InventoryTransactionResponse{
		ID:              t.ID,
		InventoryID:     t.InventoryID,
		TransactionType: t.TransactionType,
		Quantity:        t.Quantity,
		FromStatus:      string(t.FromStatus),
		ToStatus:        string(t.ToStatus),
		ReferenceType:   t.ReferenceType,
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}
