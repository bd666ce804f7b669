package sales

import (
	"context"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// GetOrderUseCase lee una venta completa (solo lectura, repos sobre el pool).
type GetOrderUseCase struct {
	orderRepo  repository.SalesOrderRepository
	creditRepo repository.CreditRepository
}

// NewGetOrderUseCase construye el caso de uso.
func NewGetOrderUseCase(orderRepo repository.SalesOrderRepository, creditRepo repository.CreditRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, creditRepo: creditRepo}
}

// Execute devuelve la venta con líneas y plan de crédito si lo tiene.
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*dto.SalesOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	lines, err := uc.orderRepo.GetLines(orderID)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.creditRepo.GetScheduleByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	var installments []*entity.Installment
	if schedule != nil {
		installments, err = uc.creditRepo.GetInstallments(schedule.ID)
		if err != nil {
			return nil, err
		}
	}
	return buildOrderResponse(order, lines, schedule, installments), nil
}
