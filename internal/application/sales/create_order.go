package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/credit"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// Prefijo del consecutivo de ventas (F-000123).
const salesNumberPrefix = "F-"

// CreateOrderUseCase crea ventas de forma transaccional: valida líneas,
// verifica y descuenta stock, escribe cabecera+líneas, asienta el kardex y,
// para ventas a crédito, genera el plan de cuotas. Todo dentro de una sola
// transacción: cualquier fallo revierte hasta la última escritura.
type CreateOrderUseCase struct {
	txRunner        TxRunner
	taxRate         decimal.Decimal
	defaultInterval int // días entre cuotas cuando el cliente no lo indica
}

// NewCreateOrderUseCase construye el caso de uso. taxRate viene de configuración
// (0.15 por defecto); defaultInterval es el espaciado de cuotas en días.
func NewCreateOrderUseCase(txRunner TxRunner, taxRate decimal.Decimal, defaultInterval int) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:        txRunner,
		taxRate:         taxRate,
		defaultInterval: defaultInterval,
	}
}

// Execute crea la venta y devuelve la orden completa (cabecera + líneas +
// plan de crédito si aplica).
func (uc *CreateOrderUseCase) Execute(ctx context.Context, userID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyLineList
	}
	if in.PaymentMethod != entity.PaymentMethodCash && in.PaymentMethod != entity.PaymentMethodCredit {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Subtotales por línea: qty×precio − descuento. Sin piso en cero: un
	// descuento mayor que la línea deja subtotal negativo y se persiste tal
	// cual (así factura caja; los reportes lo asumen).
	lineSubtotals := make([]decimal.Decimal, len(in.Lines))
	discounts := make([]decimal.Decimal, len(in.Lines))
	subtotal := decimal.Zero
	for i, l := range in.Lines {
		discount := decimal.Zero
		if l.Discount != nil {
			discount = *l.Discount
		}
		lineSub := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Sub(discount)
		discounts[i] = discount
		lineSubtotals[i] = lineSub
		subtotal = subtotal.Add(lineSub)
	}
	tax := subtotal.Mul(uc.taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

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
		_ repository.StatusRepository,
	) error {
		// Verificación de stock de TODAS las líneas antes de escribir nada,
		// con bloqueo de fila para que el descuento posterior no compita.
		for _, l := range in.Lines {
			product, err := stockRepo.GetForUpdate(l.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: l.ProductID}
			}
			if product.Stock < l.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   l.Quantity,
					Available:   product.Stock,
				}
			}
		}

		// Consecutivo reservado en la secuencia de la BD (sin carrera entre
		// creadores concurrentes; puede dejar huecos tras un rollback).
		seq, err := orderRepo.NextNumber()
		if err != nil {
			return err
		}

		order = &entity.SalesOrder{
			ID:            uuid.New().String(),
			Number:        fmt.Sprintf("%s%06d", salesNumberPrefix, seq),
			CustomerID:    in.CustomerID,
			UserID:        userID,
			PaymentMethod: in.PaymentMethod,
			Status:        entity.OrderStatusActive,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         total,
			Note:          in.Note,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		lines = make([]*entity.SalesOrderLine, 0, len(in.Lines))
		for i, l := range in.Lines {
			line := &entity.SalesOrderLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Discount:  discounts[i],
				Subtotal:  lineSubtotals[i],
				Status:    entity.OrderStatusActive,
			}
			if err := orderRepo.CreateLine(line); err != nil {
				return err
			}
			lines = append(lines, line)
		}

		// Descuenta stock y asienta el kardex: un asiento OUTBOUND/SALE por
		// línea, con el precio unitario como costo y la nota como comentario.
		for _, line := range lines {
			if err := stockRepo.Adjust(line.ProductID, -line.Quantity); err != nil {
				return err
			}
			if err := ledgerRepo.Append(&entity.LedgerEntry{
				ID:          uuid.New().String(),
				ProductID:   line.ProductID,
				Direction:   entity.DirectionOutbound,
				Origin:      entity.OriginSale,
				ReferenceID: order.ID,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitPrice,
				Comment:     in.Note,
				Status:      entity.OrderStatusActive,
				CreatedBy:   userID,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
		}

		if in.PaymentMethod == entity.PaymentMethodCredit {
			var err error
			schedule, installments, err = uc.createSchedule(creditRepo, order, in.Credit, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildOrderResponse(order, lines, schedule, installments), nil
}

// createSchedule valida la configuración de crédito y materializa plan+cuotas.
// Total y saldo del plan nacen iguales al total de la venta.
func (uc *CreateOrderUseCase) createSchedule(
	creditRepo repository.CreditRepository,
	order *entity.SalesOrder,
	cfg *dto.CreditConfigRequest,
	now time.Time,
) (*entity.CreditSchedule, []*entity.Installment, error) {
	if cfg == nil {
		return nil, nil, domain.ErrCreditConfigMissing
	}
	if cfg.Installments <= 0 {
		return nil, nil, domain.ErrInvalidInstallmentCount
	}
	firstDue, err := time.Parse("2006-01-02", cfg.FirstDueDate)
	if err != nil {
		return nil, nil, domain.ErrCreditConfigMissing
	}
	interval := cfg.DayInterval
	if interval <= 0 {
		interval = uc.defaultInterval
	}

	schedule := &entity.CreditSchedule{
		ID:          uuid.New().String(),
		OrderID:     order.ID,
		Total:       order.Total,
		Outstanding: order.Total,
		StartDate:   now,
		Status:      entity.ScheduleStatusActive,
		CreatedAt:   now,
	}
	if err := creditRepo.CreateSchedule(schedule); err != nil {
		return nil, nil, err
	}

	generated := credit.GenerateInstallments(order.Total, credit.Plan{
		Installments: cfg.Installments,
		FirstDueDate: firstDue,
		DayInterval:  interval,
	})
	installments := make([]*entity.Installment, 0, len(generated))
	for i := range generated {
		cuota := generated[i]
		cuota.ID = uuid.New().String()
		cuota.ScheduleID = schedule.ID
		if err := creditRepo.CreateInstallment(&cuota); err != nil {
			return nil, nil, err
		}
		installments = append(installments, &cuota)
	}
	return schedule, installments, nil
}
