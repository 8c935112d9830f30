package transforming

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-reporter/internal/domain"
	"github.com/vfg2006/sales-reporter/pkg/utils"
)

// Process limpa e enriquece as vendas brutas: converte a data, deriva
// mês e dia da semana, arredonda valores monetários para duas casas e
// remove linhas totalmente duplicadas. A entrada nunca é modificada.
//
// O arredondamento é half away from zero (decimal.Round): 19.995 vira
// 20.00. A deduplicação considera a tupla completa, incluindo as
// colunas derivadas, e preserva a primeira ocorrência.
func Process(sales []domain.Sale) ([]domain.ProcessedSale, error) {
	processed := make([]domain.ProcessedSale, 0, len(sales))
	seen := make(map[domain.ProcessedSale]struct{}, len(sales))

	for _, sale := range sales {
		date, err := utils.ParseDate(sale.SaleDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter data da venda %d (%q): %w", sale.ID, sale.SaleDate, err)
		}

		row := domain.ProcessedSale{
			ID:          sale.ID,
			SaleDate:    *date,
			ProductName: sale.ProductName,
			Category:    sale.Category,
			Quantity:    sale.Quantity,
			UnitPrice:   roundMoney(sale.UnitPrice),
			TotalAmount: roundMoney(sale.TotalAmount),
			Month:       date.Format(utils.MonthLayout),
			DayOfWeek:   date.Weekday().String(),
		}

		if _, exists := seen[row]; exists {
			continue
		}
		seen[row] = struct{}{}

		processed = append(processed, row)
	}

	return processed, nil
}

func roundMoney(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}
