package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/domain"
)

func newTestDatabase(t *testing.T, sales []domain.Sale) config.Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sales_test.db")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
	CREATE TABLE sales (
		sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
		sale_date TEXT NOT NULL,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		total_amount REAL NOT NULL
	)`)
	require.NoError(t, err)

	for _, sale := range sales {
		_, err := db.Exec(
			`INSERT INTO sales (sale_date, product_name, category, quantity, unit_price, total_amount) VALUES (?, ?, ?, ?, ?, ?)`,
			sale.SaleDate, sale.ProductName, sale.Category, sale.Quantity, sale.UnitPrice, sale.TotalAmount,
		)
		require.NoError(t, err)
	}

	return config.Database{Driver: "sqlite3", Path: dbPath}
}

func TestSaleRepository_FetchSales_OrderedByDateDescending(t *testing.T) {
	dbConfig := newTestDatabase(t, []domain.Sale{
		{SaleDate: "2024-01-01", ProductName: "Laptop", Category: "Electronics", Quantity: 2, UnitPrice: 899.99, TotalAmount: 1799.98},
		{SaleDate: "2024-03-10", ProductName: "Desk", Category: "Furniture", Quantity: 1, UnitPrice: 399.99, TotalAmount: 399.99},
		{SaleDate: "2024-02-05", ProductName: "Mouse", Category: "Electronics", Quantity: 3, UnitPrice: 29.99, TotalAmount: 89.97},
	})

	repo := NewSaleRepository(dbConfig)

	sales, err := repo.FetchSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 3)

	assert.Equal(t, "2024-03-10", sales[0].SaleDate)
	assert.Equal(t, "2024-02-05", sales[1].SaleDate)
	assert.Equal(t, "2024-01-01", sales[2].SaleDate)

	// Colunas escaneadas integralmente
	assert.Equal(t, "Desk", sales[0].ProductName)
	assert.Equal(t, int64(1), sales[0].Quantity)
	assert.Equal(t, 399.99, sales[0].UnitPrice)
}

func TestSaleRepository_FetchSummary_GroupsByProductAndCategory(t *testing.T) {
	dbConfig := newTestDatabase(t, []domain.Sale{
		{SaleDate: "2024-01-01", ProductName: "Laptop", Category: "Electronics", Quantity: 2, UnitPrice: 899.99, TotalAmount: 1799.98},
		{SaleDate: "2024-01-02", ProductName: "Laptop", Category: "Electronics", Quantity: 1, UnitPrice: 899.99, TotalAmount: 899.99},
		{SaleDate: "2024-01-03", ProductName: "Mouse", Category: "Electronics", Quantity: 3, UnitPrice: 29.99, TotalAmount: 89.97},
	})

	repo := NewSaleRepository(dbConfig)

	summary, err := repo.FetchSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Ordenado por receita total decrescente
	assert.Equal(t, "Laptop", summary[0].ProductName)
	assert.Equal(t, "Electronics", summary[0].Category)
	assert.Equal(t, int64(2), summary[0].TotalSales)
	assert.Equal(t, int64(3), summary[0].TotalQuantity)
	assert.InDelta(t, 2699.97, summary[0].TotalRevenue, 0.001)
	assert.InDelta(t, 1349.985, summary[0].AvgSaleAmount, 0.001)

	assert.Equal(t, "Mouse", summary[1].ProductName)
	assert.Equal(t, int64(1), summary[1].TotalSales)
	assert.InDelta(t, 89.97, summary[1].TotalRevenue, 0.001)
}

func TestSaleRepository_SummaryIsExhaustiveAndDisjoint(t *testing.T) {
	raw := []domain.Sale{
		{SaleDate: "2024-01-01", ProductName: "Laptop", Category: "Electronics", Quantity: 2, UnitPrice: 899.99, TotalAmount: 1799.98},
		{SaleDate: "2024-01-02", ProductName: "Desk", Category: "Furniture", Quantity: 1, UnitPrice: 399.99, TotalAmount: 399.99},
		{SaleDate: "2024-01-03", ProductName: "Desk", Category: "Furniture", Quantity: 2, UnitPrice: 399.99, TotalAmount: 799.98},
		{SaleDate: "2024-01-04", ProductName: "Mouse", Category: "Electronics", Quantity: 5, UnitPrice: 29.99, TotalAmount: 149.95},
	}
	dbConfig := newTestDatabase(t, raw)

	repo := NewSaleRepository(dbConfig)
	ctx := context.Background()

	sales, err := repo.FetchSales(ctx)
	require.NoError(t, err)

	summary, err := repo.FetchSummary(ctx)
	require.NoError(t, err)

	// Cada par (produto, categoria) aparece em exatamente uma linha do
	// resumo, com contagem igual ao número de vendas do par
	type key struct{ product, category string }

	rawCounts := make(map[key]int64)
	var rawRevenue, rawQuantity float64
	for _, sale := range sales {
		rawCounts[key{sale.ProductName, sale.Category}]++
		rawRevenue += sale.TotalAmount
		rawQuantity += float64(sale.Quantity)
	}

	summaryKeys := make(map[key]struct{})
	var sumRevenue float64
	var sumQuantity int64
	for _, row := range summary {
		k := key{row.ProductName, row.Category}
		_, duplicated := summaryKeys[k]
		assert.False(t, duplicated, "par (%s, %s) repetido no resumo", row.ProductName, row.Category)
		summaryKeys[k] = struct{}{}

		assert.Equal(t, rawCounts[k], row.TotalSales)
		sumRevenue += row.TotalRevenue
		sumQuantity += row.TotalQuantity
	}

	assert.Len(t, summaryKeys, len(rawCounts))
	assert.InDelta(t, rawRevenue, sumRevenue, 0.001)
	assert.Equal(t, int64(rawQuantity), sumQuantity)
}

func TestSaleRepository_EmptyTable(t *testing.T) {
	dbConfig := newTestDatabase(t, nil)

	repo := NewSaleRepository(dbConfig)
	ctx := context.Background()

	sales, err := repo.FetchSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)

	summary, err := repo.FetchSummary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestSaleRepository_MissingTableFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	repo := NewSaleRepository(config.Database{Driver: "sqlite3", Path: dbPath})

	_, err := repo.FetchSales(context.Background())
	assert.Error(t, err)
}

func TestSaleRepository_UnsupportedDriverFails(t *testing.T) {
	repo := NewSaleRepository(config.Database{Driver: "oracle", Path: "ignored"})

	_, err := repo.FetchSales(context.Background())
	assert.Error(t, err)
}
