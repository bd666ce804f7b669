// seed_products genera un script SQL para poblar el catálogo de productos a
// partir de un libro Excel (columnas: sku, name, stock, price, last_cost,
// min_stock; la primera fila es la cabecera).
//
// Uso: go run ./cmd/seed_products [ruta/catalogo.xlsx]
// Por defecto busca catalogo.xlsx en el directorio actual.
// Escribe: migrations/002_seed_products.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type productRow struct {
	sku      string
	name     string
	stock    int
	price    string
	lastCost string
	minStock int
}

func main() {
	xlsxPath := "catalogo.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}

	products, err := parseCatalog(xlsxPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	if len(products) == 0 {
		fmt.Fprintln(os.Stderr, "El catálogo no tiene filas válidas")
		os.Exit(1)
	}

	outPath := filepath.Join("migrations", "002_seed_products.sql")
	if err := writeSeed(outPath, products); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s con %d productos\n", outPath, len(products))
}

func parseCatalog(path string) ([]productRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("el libro no tiene filas de datos")
	}

	cols := mapColumns(rows[0])
	for _, required := range []string{"sku", "name", "stock", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("falta la columna requerida %q", required)
		}
	}

	var products []productRow
	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		sku := strings.TrimSpace(readCell(cells, cols["sku"]))
		name := strings.TrimSpace(readCell(cells, cols["name"]))
		if sku == "" || name == "" {
			continue
		}
		stock, err := parseIntCell(readCell(cells, cols["stock"]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: stock inválido: %w", i+1, err)
		}
		price, err := parseMoneyCell(readCell(cells, cols["price"]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: price inválido: %w", i+1, err)
		}
		lastCost := "0"
		if idx, ok := cols["last_cost"]; ok {
			if raw := strings.TrimSpace(readCell(cells, idx)); raw != "" {
				lastCost, err = parseMoneyCell(raw)
				if err != nil {
					return nil, fmt.Errorf("fila %d: last_cost inválido: %w", i+1, err)
				}
			}
		}
		minStock := 0
		if idx, ok := cols["min_stock"]; ok {
			if raw := strings.TrimSpace(readCell(cells, idx)); raw != "" {
				minStock, err = parseIntCell(raw)
				if err != nil {
					return nil, fmt.Errorf("fila %d: min_stock inválido: %w", i+1, err)
				}
			}
		}
		products = append(products, productRow{
			sku:      sku,
			name:     name,
			stock:    stock,
			price:    price,
			lastCost: lastCost,
			minStock: minStock,
		})
	}
	return products, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for idx, raw := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "﻿")))
		key = strings.ReplaceAll(key, " ", "_")
		if key == "" {
			continue
		}
		if _, exists := cols[key]; !exists {
			cols[key] = idx
		}
	}
	return cols
}

func readCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseIntCell(raw string) (int, error) {
	value := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if value == "" {
		return 0, fmt.Errorf("valor vacío")
	}
	return strconv.Atoi(value)
}

func parseMoneyCell(raw string) (string, error) {
	value := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if value == "" {
		return "", fmt.Errorf("valor vacío")
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return "", fmt.Errorf("no es un número")
	}
	return value, nil
}

func writeSeed(path string, products []productRow) error {
	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed_products. No editar a mano.\n")
	b.WriteString("INSERT INTO products (id, sku, name, stock, min_stock, last_cost, price)\nVALUES\n")
	for i, p := range products {
		sep := ","
		if i == len(products)-1 {
			sep = ""
		}
		b.WriteString(fmt.Sprintf("    (gen_random_uuid(), %s, %s, %d, %d, %s, %s)%s\n",
			sqlQuote(p.sku), sqlQuote(p.name), p.stock, p.minStock, p.lastCost, p.price, sep))
	}
	b.WriteString("ON CONFLICT (sku) DO NOTHING;\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
