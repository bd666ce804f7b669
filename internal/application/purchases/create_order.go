package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// Prefijo del consecutivo de compras (C-000045).
const purchaseNumberPrefix = "C-"

// CreateOrderUseCase registra compras a proveedor: escribe cabecera+líneas,
// suma stock, sobreescribe el último costo de cada producto y asienta el
// kardex, todo en una transacción. Más simple que ventas: las compras solo
// agregan stock (sin verificación de existencia) y no tienen crédito ni
// anulación.
type CreateOrderUseCase struct {
	txRunner TxRunner
	taxRate  decimal.Decimal
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner, taxRate decimal.Decimal) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, taxRate: taxRate}
}

// Execute registra la compra y devuelve la orden completa.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyLineList
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	subtotal := decimal.Zero
	lineSubtotals := make([]decimal.Decimal, len(in.Lines))
	for i, l := range in.Lines {
		lineSub := l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lineSubtotals[i] = lineSub
		subtotal = subtotal.Add(lineSub)
	}
	tax := subtotal.Mul(uc.taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	now := time.Now()
	var (
		order *entity.PurchaseOrder
		lines []*entity.PurchaseOrderLine
	)

	err := uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		productRepo repository.ProductRepository,
	) error {
		seq, err := orderRepo.NextNumber()
		if err != nil {
			return err
		}

		order = &entity.PurchaseOrder{
			ID:         uuid.New().String(),
			Number:     fmt.Sprintf("%s%06d", purchaseNumberPrefix, seq),
			SupplierID: in.SupplierID,
			UserID:     userID,
			Subtotal:   subtotal,
			Tax:        tax,
			Total:      total,
			Note:       in.Note,
			CreatedAt:  now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		lines = make([]*entity.PurchaseOrderLine, 0, len(in.Lines))
		for i, l := range in.Lines {
			line := &entity.PurchaseOrderLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitCost:  l.UnitCost,
				Subtotal:  lineSubtotals[i],
			}
			if err := orderRepo.CreateLine(line); err != nil {
				return err
			}
			lines = append(lines, line)
		}

		// Por línea: suma stock, sobreescribe el último costo del producto y
		// asienta la entrada en el kardex. El Adjust falla si el producto no
		// existe y revierte la compra completa.
		for _, line := range lines {
			if err := stockRepo.Adjust(line.ProductID, line.Quantity); err != nil {
				return err
			}
			if err := productRepo.UpdateLastCost(line.ProductID, line.UnitCost); err != nil {
				return err
			}
			if err := ledgerRepo.Append(&entity.LedgerEntry{
				ID:          uuid.New().String(),
				ProductID:   line.ProductID,
				Direction:   entity.DirectionInbound,
				Origin:      entity.OriginPurchase,
				ReferenceID: order.ID,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitCost,
				Comment:     in.Note,
				Status:      entity.OrderStatusActive,
				CreatedBy:   userID,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildPurchaseResponse(order, lines), nil
}

// Cancel siempre rechaza: las compras son inmutables una vez registradas.
// El ajuste correcto es un movimiento de inventario, no tocar la compra.
func (uc *CreateOrderUseCase) Cancel(ctx context.Context, orderID string) error {
	return domain.ErrUnsupportedOperation
}

// Modify siempre rechaza, por la misma razón que Cancel.
func (uc *CreateOrderUseCase) Modify(ctx context.Context, orderID string) error {
	return domain.ErrUnsupportedOperation
}

func buildPurchaseResponse(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:         order.ID,
		Number:     order.Number,
		SupplierID: order.SupplierID,
		UserID:     order.UserID,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Total:      order.Total,
		Note:       order.Note,
		CreatedAt:  order.CreatedAt.Format("2006-01-02"),
		Lines:      make([]dto.PurchaseLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.PurchaseLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			Subtotal:  l.Subtotal,
		})
	}
	return resp
}
