package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-reporter/internal/domain"
	"github.com/vfg2006/sales-reporter/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DataSheet    = "Data"

	// Linha do cabeçalho da tabela de resumo; as linhas 1 a 4 ficam
	// reservadas para título, data de geração e totais gerais.
	summaryHeaderRow = 5

	titleFillColor      = "4472C4"
	dataHeaderFillColor = "70AD47"

	barChartAnchor  = "H5"
	lineChartAnchor = "H22"
)

var summaryHeaders = []string{
	"product_name",
	"category",
	"total_sales",
	"total_quantity",
	"total_revenue",
	"avg_sale_amount",
}

var dataHeaders = []string{
	"sale_id",
	"sale_date",
	"product_name",
	"category",
	"quantity",
	"unit_price",
	"total_amount",
	"month",
	"day_of_week",
}

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook escreve o relatório em duas abas: Summary (resumo por
// produto com título, data de geração e totais gerais) e Data (vendas
// processadas). Essa é a fase estrutural: qualquer falha aqui
// inviabiliza o relatório.
func (w *Writer) WriteWorkbook(
	path string,
	sales []domain.ProcessedSale,
	summary []domain.SummaryRow,
	generatedAt time.Time,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("erro ao criar a aba %s: %w", SummarySheet, err)
	}
	if _, err := f.NewSheet(DataSheet); err != nil {
		return fmt.Errorf("erro ao criar a aba %s: %w", DataSheet, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("erro ao remover a aba padrão: %w", err)
	}

	if err := w.writeSummarySheet(f, summary, generatedAt); err != nil {
		return err
	}

	if err := w.writeDataSheet(f, sales); err != nil {
		return err
	}

	index, err := f.GetSheetIndex(SummarySheet)
	if err != nil {
		return fmt.Errorf("erro ao localizar a aba %s: %w", SummarySheet, err)
	}
	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("erro ao salvar o relatório em %s: %w", path, err)
	}

	return nil
}

func (w *Writer) writeSummarySheet(f *excelize.File, summary []domain.SummaryRow, generatedAt time.Time) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{titleFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo do título: %w", err)
	}

	italicStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo da data de geração: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo dos totais: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{titleFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo do cabeçalho: %w", err)
	}

	if err := f.SetCellValue(SummarySheet, "A1", "SALES REPORT SUMMARY"); err != nil {
		return fmt.Errorf("erro ao escrever o título: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo do título: %w", err)
	}
	if err := f.MergeCell(SummarySheet, "A1", "F1"); err != nil {
		return fmt.Errorf("erro ao mesclar células do título: %w", err)
	}

	generatedOn := fmt.Sprintf("Generated on: %s", generatedAt.Format(utils.TimestampLayout))
	if err := f.SetCellValue(SummarySheet, "A2", generatedOn); err != nil {
		return fmt.Errorf("erro ao escrever a data de geração: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A2", "A2", italicStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo da data de geração: %w", err)
	}

	totalRevenue, totalQuantity := totals(summary)
	if err := f.SetCellValue(SummarySheet, "A3", "Overall Totals:"); err != nil {
		return fmt.Errorf("erro ao escrever os totais: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A3", "A3", boldStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo dos totais: %w", err)
	}
	if err := f.SetCellValue(SummarySheet, "B3", fmt.Sprintf("Total Revenue: $%s", utils.FormatMoney(totalRevenue))); err != nil {
		return fmt.Errorf("erro ao escrever a receita total: %w", err)
	}
	if err := f.SetCellValue(SummarySheet, "D3", fmt.Sprintf("Total Quantity: %s", utils.FormatThousands(totalQuantity))); err != nil {
		return fmt.Errorf("erro ao escrever a quantidade total: %w", err)
	}

	headerCell := fmt.Sprintf("A%d", summaryHeaderRow)
	if err := f.SetSheetRow(SummarySheet, headerCell, &[]interface{}{
		summaryHeaders[0], summaryHeaders[1], summaryHeaders[2],
		summaryHeaders[3], summaryHeaders[4], summaryHeaders[5],
	}); err != nil {
		return fmt.Errorf("erro ao escrever o cabeçalho do resumo: %w", err)
	}
	lastHeaderCell := fmt.Sprintf("F%d", summaryHeaderRow)
	if err := f.SetCellStyle(SummarySheet, headerCell, lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo do cabeçalho do resumo: %w", err)
	}

	for i, row := range summary {
		cell := fmt.Sprintf("A%d", summaryHeaderRow+1+i)
		err := f.SetSheetRow(SummarySheet, cell, &[]interface{}{
			row.ProductName,
			row.Category,
			row.TotalSales,
			row.TotalQuantity,
			row.TotalRevenue,
			utils.RoundWithTwoDecimalPlace(row.AvgSaleAmount),
		})
		if err != nil {
			return fmt.Errorf("erro ao escrever linha do resumo: %w", err)
		}
	}

	widths := []float64{20, 15, 15, 18, 18, 18}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("erro ao resolver coluna do resumo: %w", err)
		}
		if err := f.SetColWidth(SummarySheet, col, col, width); err != nil {
			return fmt.Errorf("erro ao definir largura da coluna %s: %w", col, err)
		}
	}

	return nil
}

func (w *Writer) writeDataSheet(f *excelize.File, sales []domain.ProcessedSale) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{dataHeaderFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo do cabeçalho de dados: %w", err)
	}

	if err := f.SetSheetRow(DataSheet, "A1", &[]interface{}{
		dataHeaders[0], dataHeaders[1], dataHeaders[2], dataHeaders[3],
		dataHeaders[4], dataHeaders[5], dataHeaders[6], dataHeaders[7],
		dataHeaders[8],
	}); err != nil {
		return fmt.Errorf("erro ao escrever o cabeçalho de dados: %w", err)
	}
	if err := f.SetCellStyle(DataSheet, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo do cabeçalho de dados: %w", err)
	}

	for i, sale := range sales {
		cell := fmt.Sprintf("A%d", 2+i)
		err := f.SetSheetRow(DataSheet, cell, &[]interface{}{
			sale.ID,
			sale.SaleDate.Format(utils.DateLayout),
			sale.ProductName,
			sale.Category,
			sale.Quantity,
			sale.UnitPrice,
			sale.TotalAmount,
			sale.Month,
			sale.DayOfWeek,
		})
		if err != nil {
			return fmt.Errorf("erro ao escrever linha de dados: %w", err)
		}
	}

	if err := f.SetColWidth(DataSheet, "A", "I", 15); err != nil {
		return fmt.Errorf("erro ao definir larguras das colunas de dados: %w", err)
	}

	return nil
}

// AttachCharts reabre o arquivo recém-escrito e anexa os dois gráficos
// do resumo: colunas com a receita por produto e linha com a quantidade
// vendida por produto. Uma falha aqui não invalida o relatório da fase
// estrutural, que permanece legível sem gráficos.
func (w *Writer) AttachCharts(path string, summaryCount int) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("erro ao reabrir o relatório %s: %w", path, err)
	}
	defer f.Close()

	firstDataRow := summaryHeaderRow + 1
	lastDataRow := summaryHeaderRow + summaryCount

	categories := fmt.Sprintf("%s!$A$%d:$A$%d", SummarySheet, firstDataRow, lastDataRow)

	revenueChart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$E$%d", SummarySheet, summaryHeaderRow),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$E$%d:$E$%d", SummarySheet, firstDataRow, lastDataRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "Revenue by Product"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Product"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Total Revenue ($)"}}},
		Dimension: excelize.ChartDimension{
			Width:  756,
			Height: 378,
		},
	}
	if err := f.AddChart(SummarySheet, barChartAnchor, revenueChart); err != nil {
		return fmt.Errorf("erro ao anexar gráfico de receita: %w", err)
	}

	quantityChart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$D$%d", SummarySheet, summaryHeaderRow),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$D$%d:$D$%d", SummarySheet, firstDataRow, lastDataRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "Quantity Sold by Product"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Product"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Total Quantity"}}},
		Dimension: excelize.ChartDimension{
			Width:  756,
			Height: 378,
		},
	}
	if err := f.AddChart(SummarySheet, lineChartAnchor, quantityChart); err != nil {
		return fmt.Errorf("erro ao anexar gráfico de quantidade: %w", err)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("erro ao salvar o relatório com gráficos: %w", err)
	}

	return nil
}

// totals calcula os totais gerais do resumo com aritmética decimal para
// evitar desvios de ponto flutuante na linha de totais.
func totals(summary []domain.SummaryRow) (float64, int64) {
	revenue := decimal.Zero
	var quantity int64

	for _, row := range summary {
		revenue = revenue.Add(decimal.NewFromFloat(row.TotalRevenue))
		quantity += row.TotalQuantity
	}

	totalRevenue, _ := revenue.Round(2).Float64()
	return totalRevenue, quantity
}
