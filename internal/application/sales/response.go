package sales

import (
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// buildOrderResponse arma la respuesta completa de una venta.
func buildOrderResponse(
	order *entity.SalesOrder,
	lines []*entity.SalesOrderLine,
	schedule *entity.CreditSchedule,
	installments []*entity.Installment,
) *dto.SalesOrderResponse {
	resp := &dto.SalesOrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerID:    order.CustomerID,
		UserID:        order.UserID,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		Note:          order.Note,
		CreatedAt:     order.CreatedAt.Format("2006-01-02"),
		Lines:         make([]dto.SalesLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SalesLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
			Subtotal:  l.Subtotal,
			Status:    l.Status,
		})
	}
	if schedule != nil {
		credit := &dto.CreditScheduleResponse{
			ID:           schedule.ID,
			Total:        schedule.Total,
			Outstanding:  schedule.Outstanding,
			StartDate:    schedule.StartDate.Format("2006-01-02"),
			Status:       schedule.Status,
			Installments: make([]dto.InstallmentResponse, 0, len(installments)),
		}
		for _, c := range installments {
			credit.Installments = append(credit.Installments, dto.InstallmentResponse{
				ID:         c.ID,
				Seq:        c.Seq,
				DueDate:    c.DueDate.Format("2006-01-02"),
				AmountDue:  c.AmountDue,
				AmountPaid: c.AmountPaid,
				Status:     c.Status,
			})
		}
		resp.Credit = credit
	}
	return resp
}
