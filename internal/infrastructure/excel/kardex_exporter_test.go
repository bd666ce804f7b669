package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	infraexcel "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/infrastructure/excel"
)

func TestKardexExporter_GeneraLibroLegible(t *testing.T) {
	exporter := infraexcel.NewKardexExporter()

	data, err := exporter.Export([]*entity.LedgerEntry{
		{
			ID:          "asiento-1",
			ProductID:   "guitarra-1",
			Direction:   entity.DirectionOutbound,
			Origin:      entity.OriginSale,
			ReferenceID: "venta-1",
			Quantity:    2,
			UnitCost:    decimal.RequireFromString("500.00"),
			Comment:     "venta mostrador",
			Status:      entity.OrderStatusActive,
			CreatedAt:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "asiento-2",
			ProductID:   "cuerdas-1",
			Direction:   entity.DirectionInbound,
			Origin:      entity.OriginPurchase,
			ReferenceID: "compra-1",
			Quantity:    10,
			UnitCost:    decimal.RequireFromString("8.50"),
			Status:      entity.OrderStatusActive,
			CreatedAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// El archivo debe poder reabrirse y conservar cabecera y filas.
	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Kardex")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + un asiento por fila")

	assert.Equal(t, "Fecha", rows[0][0])
	assert.Equal(t, "guitarra-1", rows[1][1])
	assert.Equal(t, "Salida", rows[1][2])
	assert.Equal(t, "Venta", rows[1][3])
	assert.Equal(t, "venta-1", rows[1][4])
	assert.Equal(t, "2", rows[1][5])
	assert.Equal(t, "Entrada", rows[2][2])
	assert.Equal(t, "Compra", rows[2][3])
}

func TestKardexExporter_SinAsientos(t *testing.T) {
	exporter := infraexcel.NewKardexExporter()

	data, err := exporter.Export(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Kardex")
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo la cabecera")
}
