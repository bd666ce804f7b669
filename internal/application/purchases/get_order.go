package purchases

import (
	"context"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// GetOrderUseCase lee una compra completa (solo lectura, repos sobre el pool).
type GetOrderUseCase struct {
	orderRepo repository.PurchaseOrderRepository
}

// NewGetOrderUseCase construye el caso de uso.
func NewGetOrderUseCase(orderRepo repository.PurchaseOrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute devuelve la compra con sus líneas.
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
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
	return buildPurchaseResponse(order, lines), nil
}
