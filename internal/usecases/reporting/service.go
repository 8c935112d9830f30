package reporting

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/sales-reporter/infrastructure/mailer"
	"github.com/vfg2006/sales-reporter/infrastructure/repository"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/domain"
	"github.com/vfg2006/sales-reporter/internal/usecases/transforming"
	"github.com/vfg2006/sales-reporter/pkg/log"
	"github.com/vfg2006/sales-reporter/pkg/reporterrors"
	"github.com/vfg2006/sales-reporter/pkg/utils"
)

// ReportWriter escreve o relatório em duas fases: a estrutural
// (WriteWorkbook) e a de gráficos (AttachCharts). A política de
// escalonamento entre as fases é do serviço, não do escritor.
type ReportWriter interface {
	WriteWorkbook(path string, sales []domain.ProcessedSale, summary []domain.SummaryRow, generatedAt time.Time) error
	AttachCharts(path string, summaryCount int) error
}

type Reporter interface {
	Run(ctx context.Context) (string, error)
}

type Service struct {
	cfg      *config.Config
	saleRepo repository.SaleRepository
	writer   ReportWriter
	mailer   mailer.Mailer
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	writer ReportWriter,
	mailer mailer.Mailer,
) *Service {
	return &Service{
		cfg:      cfg,
		saleRepo: saleRepo,
		writer:   writer,
		mailer:   mailer,
	}
}

// Run executa o pipeline completo uma vez e retorna o caminho do
// relatório gerado. Falhas de acesso a dados, transformação e escrita
// estrutural são fatais; falhas de gráficos e de envio de e-mail são
// absorvidas, pois o arquivo em disco é a entrega principal.
func (s *Service) Run(ctx context.Context) (string, error) {
	return s.RunAt(ctx, time.Now())
}

// RunAt executa o pipeline com uma data de geração específica.
func (s *Service) RunAt(ctx context.Context, now time.Time) (string, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = ""
	}
	ctx, runID = log.WithRunID(ctx, runID)

	logger := log.ForContext(ctx)
	logger.Infof("Iniciando geração de relatório de vendas (execução %s)", runID)

	sales, err := s.saleRepo.FetchSales(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas no banco de dados")
		return "", reporterrors.New(reporterrors.ErrDatabaseQuery, "fetch_sales", err)
	}
	logger.Infof("Vendas carregadas: %d registros", len(sales))

	summary, err := s.saleRepo.FetchSummary(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular resumo de vendas")
		return "", reporterrors.New(reporterrors.ErrDatabaseQuery, "fetch_summary", err)
	}
	logger.Infof("Resumo calculado para %d produtos", len(summary))

	processed, err := transforming.Process(sales)
	if err != nil {
		logger.WithError(err).Error("Erro no estágio de transformação")
		return "", reporterrors.New(reporterrors.ErrTransform, "process_sales", err)
	}
	logger.Infof("Transformação concluída: %d linhas após deduplicação", len(processed))

	outputPath := OutputPath(s.cfg.Report.OutputPath, now)

	if err := s.writer.WriteWorkbook(outputPath, processed, summary, now); err != nil {
		logger.WithError(err).Error("Erro ao gerar o relatório Excel")
		return "", reporterrors.New(reporterrors.ErrReportWorkbook, "write_workbook", err)
	}

	if err := s.writer.AttachCharts(outputPath, len(summary)); err != nil {
		// Falha absorvida: o relatório da fase estrutural continua válido
		logger.WithError(err).Error("Erro ao anexar gráficos; relatório mantido sem gráficos")
	}

	s.notify(ctx, outputPath)

	logger.WithField("report", outputPath).Info("Geração de relatório concluída com sucesso")

	return outputPath, nil
}

// notify envia o relatório por e-mail quando habilitado. O envio é
// melhor esforço: falhas são registradas e absorvidas.
func (s *Service) notify(ctx context.Context, reportPath string) {
	logger := log.ForContext(ctx)

	if !s.cfg.Email.SendEmail {
		logger.Info("Envio de e-mail desabilitado na configuração")
		return
	}

	if err := s.mailer.Send(ctx, reportPath); err != nil {
		logger.WithError(err).Error("Erro ao enviar o relatório por e-mail; o arquivo permanece disponível em disco")
	}
}

// OutputPath insere o timestamp de geração antes da extensão do caminho
// configurado (relatorio.xlsx -> relatorio_20240101_070000.xlsx).
func OutputPath(base string, now time.Time) string {
	stamp := now.Format(utils.FileStampLayout)

	ext := filepath.Ext(base)
	if ext == "" {
		return fmt.Sprintf("%s_%s", base, stamp)
	}

	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(base, ext), stamp, ext)
}
