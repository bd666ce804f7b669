// Package excel genera el archivo xlsx de exportación del kardex.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/ledger"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

var _ ledger.Exporter = (*KardexExporter)(nil)

const sheetName = "Kardex"

var headerRow = []interface{}{
	"Fecha", "Producto", "Dirección", "Origen", "Referencia",
	"Cantidad", "Costo Unit.", "Comentario", "Estado",
}

// KardexExporter implementa ledger.Exporter usando excelize.
type KardexExporter struct{}

// NewKardexExporter construye el exportador.
func NewKardexExporter() *KardexExporter { return &KardexExporter{} }

// Export serializa los asientos a un libro xlsx de una sola hoja.
func (e *KardexExporter) Export(entries []*entity.LedgerEntry) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	if err := file.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
	}

	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de fila %d: %w", i+2, err)
		}
		unitCost, _ := entry.UnitCost.Float64()
		row := []interface{}{
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.ProductID,
			directionLabel(entry.Direction),
			originLabel(entry.Origin),
			entry.ReferenceID,
			entry.Quantity,
			unitCost,
			entry.Comment,
			entry.Status,
		}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func directionLabel(direction string) string {
	switch direction {
	case entity.DirectionInbound:
		return "Entrada"
	case entity.DirectionOutbound:
		return "Salida"
	default:
		return direction
	}
}

func originLabel(origin string) string {
	switch origin {
	case entity.OriginSale:
		return "Venta"
	case entity.OriginPurchase:
		return "Compra"
	case entity.OriginAdjustment:
		return "Ajuste"
	default:
		return origin
	}
}
