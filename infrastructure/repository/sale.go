package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-reporter/infrastructure/database/sqlstore"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/domain"
)

const (
	salesTable = "sales"
)

type SaleRepository interface {
	FetchSales(ctx context.Context) ([]domain.Sale, error)
	FetchSummary(ctx context.Context) ([]domain.SummaryRow, error)
}

type saleRepository struct {
	dbConfig config.Database
}

func NewSaleRepository(dbConfig config.Database) SaleRepository {
	return &saleRepository{
		dbConfig: dbConfig,
	}
}

// FetchSales retorna todas as vendas ordenadas por data decrescente.
// Cada chamada abre uma conexão própria e a fecha antes de retornar:
// o pipeline é somente leitura e executa uma única vez por processo.
func (r *saleRepository) FetchSales(ctx context.Context) ([]domain.Sale, error) {
	conn, err := sqlstore.NewConnection(ctx, r.dbConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}
	defer conn.Close()

	query, args, err := squirrel.
		Select(
			"sale_id",
			"sale_date",
			"product_name",
			"category",
			"quantity",
			"unit_price",
			"total_amount",
		).
		From(salesTable).
		OrderBy("sale_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.SaleDate,
			&sale.ProductName,
			&sale.Category,
			&sale.Quantity,
			&sale.UnitPrice,
			&sale.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// FetchSummary retorna os agregados por (produto, categoria) ordenados
// por receita total decrescente.
func (r *saleRepository) FetchSummary(ctx context.Context) ([]domain.SummaryRow, error) {
	conn, err := sqlstore.NewConnection(ctx, r.dbConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}
	defer conn.Close()

	query, args, err := squirrel.
		Select(
			"product_name",
			"category",
			"COUNT(*) AS total_sales",
			"SUM(quantity) AS total_quantity",
			"SUM(total_amount) AS total_revenue",
			"AVG(total_amount) AS avg_sale_amount",
		).
		From(salesTable).
		GroupBy("product_name", "category").
		OrderBy("total_revenue DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summary := make([]domain.SummaryRow, 0)
	for rows.Next() {
		var row domain.SummaryRow
		err := rows.Scan(
			&row.ProductName,
			&row.Category,
			&row.TotalSales,
			&row.TotalQuantity,
			&row.TotalRevenue,
			&row.AvgSaleAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de vendas: %w", err)
		}
		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summary, nil
}
