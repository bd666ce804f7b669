// Package credit contiene el cálculo puro del plan de cuotas de una venta a
// crédito. Sin dependencias de persistencia: el motor de ventas decide cuándo
// y dentro de qué transacción se materializa el plan.
package credit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// Plan es la configuración de cuotas que acompaña una venta a crédito.
type Plan struct {
	Installments int       // N cuotas (> 0)
	FirstDueDate time.Time // vencimiento de la primera cuota
	DayInterval  int       // días entre cuotas (> 0; el motor aplica el default)
}

// GenerateInstallments reparte total en N cuotas iguales de round2(total/N),
// con vencimientos desde FirstDueDate avanzando DayInterval días por cuota.
// El residuo del redondeo NO se concilia en la última cuota: 100.00 entre 3
// produce 33.33 + 33.33 + 33.33 y los 0.01 de diferencia quedan sin asignar.
// Así lo cobra caja desde siempre y los reportes cuadran contra ese criterio.
// Todas las cuotas nacen PENDING con cero pagado.
func GenerateInstallments(total decimal.Decimal, plan Plan) []entity.Installment {
	amount := total.Div(decimal.NewFromInt(int64(plan.Installments))).Round(2)

	installments := make([]entity.Installment, 0, plan.Installments)
	for i := 0; i < plan.Installments; i++ {
		installments = append(installments, entity.Installment{
			Seq:        i + 1,
			DueDate:    plan.FirstDueDate.AddDate(0, 0, i*plan.DayInterval),
			AmountDue:  amount,
			AmountPaid: decimal.Zero,
			Status:     entity.InstallmentStatusPending,
		})
	}
	return installments
}
