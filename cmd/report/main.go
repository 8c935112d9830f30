package main

import (
	"context"
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporter/infrastructure/excel"
	"github.com/vfg2006/sales-reporter/infrastructure/mailer"
	"github.com/vfg2006/sales-reporter/infrastructure/repository"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/scheduler"
	"github.com/vfg2006/sales-reporter/internal/usecases/reporting"
)

func main() {
	configureLogger()

	configPath := flag.String("config", config.DefaultConfigFile, "caminho do arquivo de configuração")
	flag.Parse()

	logrus.Info("============================================================")
	logrus.Info("AUTOMATED SALES REPORTING")
	logrus.Info("============================================================")

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		// Sem configuração nada pode executar: status de saída 1
		logrus.Fatal(errors.Wrap(err, "falha ao carregar configuração"))
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saleRepo := repository.NewSaleRepository(cfg.Database)
	writer := excel.NewWriter()
	reportMailer := mailer.NewMailer(cfg.Email)

	reporter := reporting.NewService(cfg, saleRepo, writer, reportMailer)

	if cfg.Schedule.Enabled {
		runScheduled(ctx, reporter, cfg)
		return
	}

	reportPath, err := reporter.Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Falha na geração do relatório")
	}

	logrus.Info("============================================================")
	logrus.Infof("Relatório gerado com sucesso: %s", reportPath)
	logrus.Info("============================================================")
}

// runScheduled mantém o processo vivo gerando relatórios no horário
// configurado até o cancelamento do contexto.
func runScheduled(ctx context.Context, reporter reporting.Reporter, cfg *config.Config) {
	syncService := scheduler.NewReportSyncService(reporter, cfg)

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de relatórios")
	}

	logrus.Info("Agendador de relatórios iniciado com sucesso")

	<-ctx.Done()
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
