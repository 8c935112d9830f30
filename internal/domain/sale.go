package domain

import "time"

// Sale representa uma venda como registrada na tabela `sales`.
// Registros são imutáveis: o pipeline apenas lê, nunca altera.
type Sale struct {
	ID          int64
	SaleDate    string
	ProductName string
	Category    string
	Quantity    int64
	UnitPrice   float64
	TotalAmount float64
}

// ProcessedSale é uma venda após o estágio de transformação: data
// convertida, colunas derivadas e valores monetários arredondados.
type ProcessedSale struct {
	ID          int64
	SaleDate    time.Time
	ProductName string
	Category    string
	Quantity    int64
	UnitPrice   float64
	TotalAmount float64
	Month       string
	DayOfWeek   string
}

// SummaryRow é o agregado por (produto, categoria) calculado pelo banco.
type SummaryRow struct {
	ProductName   string
	Category      string
	TotalSales    int64
	TotalQuantity int64
	TotalRevenue  float64
	AvgSaleAmount float64
}
