package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/credit"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// TestGenerateInstallments_CienEntreTres fija el comportamiento histórico del
// redondeo: 100.00 entre 3 cuotas son 33.33 cada una y el residuo de 0.01 NO
// se concilia en la última cuota.
func TestGenerateInstallments_CienEntreTres(t *testing.T) {
	cuotas := credit.GenerateInstallments(decimal.RequireFromString("100.00"), credit.Plan{
		Installments: 3,
		FirstDueDate: fecha("2025-01-01"),
		DayInterval:  30,
	})

	require.Len(t, cuotas, 3)
	for i, c := range cuotas {
		assert.Equal(t, i+1, c.Seq)
		assert.True(t, decimal.RequireFromString("33.33").Equal(c.AmountDue),
			"cada cuota debe ser exactamente 33.33, no un monto ajustado al total")
		assert.True(t, c.AmountPaid.IsZero())
		assert.Equal(t, entity.InstallmentStatusPending, c.Status)
	}

	assert.Equal(t, fecha("2025-01-01"), cuotas[0].DueDate)
	assert.Equal(t, fecha("2025-01-31"), cuotas[1].DueDate)
	assert.Equal(t, fecha("2025-03-02"), cuotas[2].DueDate)

	// El residuo queda sin asignar: la suma de cuotas no es el total de la venta.
	suma := decimal.Zero
	for _, c := range cuotas {
		suma = suma.Add(c.AmountDue)
	}
	assert.True(t, decimal.RequireFromString("99.99").Equal(suma),
		"la suma de cuotas debe ser 99.99, evidencia de que el residuo no se reparte")
}

func TestGenerateInstallments_DivisionExacta(t *testing.T) {
	cuotas := credit.GenerateInstallments(decimal.RequireFromString("120.00"), credit.Plan{
		Installments: 2,
		FirstDueDate: fecha("2025-06-15"),
		DayInterval:  15,
	})

	require.Len(t, cuotas, 2)
	assert.True(t, decimal.RequireFromString("60.00").Equal(cuotas[0].AmountDue))
	assert.True(t, decimal.RequireFromString("60.00").Equal(cuotas[1].AmountDue))
	assert.Equal(t, fecha("2025-06-15"), cuotas[0].DueDate)
	assert.Equal(t, fecha("2025-06-30"), cuotas[1].DueDate)
}

func TestGenerateInstallments_UnaCuota(t *testing.T) {
	cuotas := credit.GenerateInstallments(decimal.RequireFromString("999.99"), credit.Plan{
		Installments: 1,
		FirstDueDate: fecha("2025-02-28"),
		DayInterval:  30,
	})

	require.Len(t, cuotas, 1)
	assert.True(t, decimal.RequireFromString("999.99").Equal(cuotas[0].AmountDue))
	assert.Equal(t, fecha("2025-02-28"), cuotas[0].DueDate)
}
