package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// CancelOrderUseCase anula una venta ACTIVE: restituye stock línea por línea,
// asienta entradas compensatorias en el kardex, anula el plan de crédito
// (marcándolo VOIDED, sin borrar el historial de pagos) y voltea cabecera y
// líneas a VOIDED. Estado terminal: no hay des-anulación.
type CancelOrderUseCase struct {
	txRunner TxRunner
}

// NewCancelOrderUseCase construye el caso de uso.
func NewCancelOrderUseCase(txRunner TxRunner) *CancelOrderUseCase {
	return &CancelOrderUseCase{txRunner: txRunner}
}

// Execute anula la venta y devuelve la orden ya anulada.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, userID, orderID string) (*dto.SalesOrderResponse, error) {
	now := time.Now()
	var (
		order        *entity.SalesOrder
		lines        []*entity.SalesOrderLine
		schedule     *entity.CreditSchedule
		installments []*entity.Installment
	)

	err := uc.txRunner.RunSales(ctx, func(
		orderRepo repository.SalesOrderRepository,
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		creditRepo repository.CreditRepository,
		statusRepo repository.StatusRepository,
	) error {
		// Precondición de despliegue: el estado VOIDED debe estar sembrado.
		// Su ausencia es un defecto de configuración, no un error del usuario.
		voided, err := statusRepo.GetByCode(entity.StatusCodeVoided)
		if err != nil {
			return err
		}
		if voided == nil {
			return domain.ErrVoidedStatusNotConfigured
		}

		// Bloquea la cabecera: dos anulaciones concurrentes de la misma venta
		// se serializan y la segunda ve el estado ya volteado.
		order, err = orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if order.Status == entity.OrderStatusVoided {
			return domain.ErrOrderAlreadyVoided
		}

		lines, err = orderRepo.GetLines(orderID)
		if err != nil {
			return err
		}

		// Restituye stock y asienta la reversa: una entrada INBOUND/ADJUSTMENT
		// por línea, comentando qué venta se anuló.
		for _, line := range lines {
			if err := stockRepo.Adjust(line.ProductID, line.Quantity); err != nil {
				return err
			}
			if err := ledgerRepo.Append(&entity.LedgerEntry{
				ID:          uuid.New().String(),
				ProductID:   line.ProductID,
				Direction:   entity.DirectionInbound,
				Origin:      entity.OriginAdjustment,
				ReferenceID: order.ID,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitPrice,
				Comment:     fmt.Sprintf("Anulación de venta %s", order.Number),
				Status:      entity.OrderStatusActive,
				CreatedBy:   userID,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
		}

		// Plan de crédito: se anula, no se borra. Las cuotas y los pagos que
		// tuvieran registrados quedan como rastro de auditoría.
		schedule, err = creditRepo.GetScheduleByOrderID(orderID)
		if err != nil {
			return err
		}
		if schedule != nil {
			if err := creditRepo.VoidByOrderID(orderID); err != nil {
				return err
			}
			schedule.Status = entity.ScheduleStatusVoided
			installments, err = creditRepo.GetInstallments(schedule.ID)
			if err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateLinesStatus(orderID, voided.Code); err != nil {
			return err
		}
		if err := orderRepo.UpdateStatus(orderID, voided.Code); err != nil {
			return err
		}
		order.Status = voided.Code
		order.UpdatedAt = now
		for _, line := range lines {
			line.Status = voided.Code
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildOrderResponse(order, lines, schedule, installments), nil
}
