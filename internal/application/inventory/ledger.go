package inventory

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// AdjustStock suma delta (con signo) a la existencia y registra exactamente un movimiento
// "adjustment" (from = to = estado actual, referencia manual) en la misma unidad atómica.
func (uc *UseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.InventoryResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "inventory.AdjustStock", trace.WithAttributes(
		attribute.String("inventory.id", id),
		attribute.Int64("inventory.delta", in.Delta),
	))
	defer span.End()

	if err := dto.Validate(in); err != nil {
		uc.metrics.StockAdjustments.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if in.UserID == "" {
		return nil, domain.NewValidationError("user_id", "es obligatorio")
	}

	unlock, err := uc.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock inventory %s: %w", id, err)
	}
	defer unlock()

	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	newQty := inv.Quantity + in.Delta
	if newQty < 0 && !uc.opts.AllowNegativeStock {
		uc.metrics.StockAdjustments.WithLabelValues("rejected").Inc()
		return nil, domain.NewValidationError("delta", fmt.Sprintf("deja la existencia en %d", newQty))
	}

	now := uc.now()
	txn := &entity.InventoryTransaction{
		InventoryID:     id,
		TransactionType: entity.TransactionAdjustment,
		Quantity:        in.Delta,
		FromStatus:      inv.Status,
		ToStatus:        inv.Status,
		ReferenceType:   entity.ReferenceManual,
		Notes:           optional(in.Reason),
		CreatedBy:       in.UserID,
		CreatedAt:       now,
	}
	err = uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository, txnRepo repository.InventoryTransactionRepository) error {
		if err := invRepo.AdjustQuantity(ctx, id, in.Delta, now); err != nil {
			return err
		}
		return txnRepo.Append(ctx, txn)
	})
	if err != nil {
		uc.metrics.StockAdjustments.WithLabelValues("failed").Inc()
		return nil, err
	}

	uc.metrics.StockAdjustments.WithLabelValues("applied").Inc()
	direction := "in"
	units := in.Delta
	if units < 0 {
		direction, units = "out", -units
	}
	uc.metrics.StockAdjustedUnits.WithLabelValues(direction).Add(float64(units))
	uc.log.Info().
		Str("inventory_id", id).
		Int64("delta", in.Delta).
		Int64("quantity", newQty).
		Str("user", in.UserID).
		Msg("ajuste de existencia")

	inv.Quantity = newQty
	inv.UpdatedAt = now
	return toInventoryResponse(inv), nil
}

// ChangeStatus cambia el estado de disponibilidad y registra un movimiento "status_change" con cantidad 0.
func (uc *UseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeStatusRequest) (*dto.InventoryResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "inventory.ChangeStatus", trace.WithAttributes(
		attribute.String("inventory.id", id),
		attribute.String("inventory.to_status", in.Status),
	))
	defer span.End()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, domain.NewValidationError("user_id", "es obligatorio")
	}

	unlock, err := uc.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock inventory %s: %w", id, err)
	}
	defer unlock()

	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	to := entity.InventoryStatus(in.Status)
	if to == inv.Status {
		return nil, domain.NewValidationError("status", "ya es "+in.Status)
	}

	now := uc.now()
	txn := &entity.InventoryTransaction{
		InventoryID:     id,
		TransactionType: entity.TransactionStatusChange,
		Quantity:        0,
		FromStatus:      inv.Status,
		ToStatus:        to,
		ReferenceType:   entity.ReferenceManual,
		Notes:           optional(in.Reason),
		CreatedBy:       in.UserID,
		CreatedAt:       now,
	}
	err = uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository, txnRepo repository.InventoryTransactionRepository) error {
		if err := invRepo.SetStatus(ctx, id, to, now); err != nil {
			return err
		}
		return txnRepo.Append(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("inventory_id", id).Str("from", string(inv.Status)).Str("to", string(to)).Msg("cambio de estado")

	inv.Status = to
	inv.UpdatedAt = now
	return toInventoryResponse(inv), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
