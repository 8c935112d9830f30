// Package scheduler contém o serviço de agendamento da geração de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/usecases/reporting"
)

type ReportSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

type ReportSyncService struct {
	scheduler          *gocron.Scheduler
	reporter           reporting.Reporter
	config             ReportSyncConfig
	runInProgress      bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewReportSyncService(
	reporter reporting.Reporter,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.Schedule.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.Schedule.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: scheduler,
		reporter:  reporter,
		config:    syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de geração de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.GenerateReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada de relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de geração de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// GenerateReport executa uma geração agendada, ignorando disparos que
// se sobreponham a uma execução ainda em andamento.
func (s *ReportSyncService) GenerateReport(ctx context.Context) error {
	s.runMutex.Lock()
	if s.runInProgress {
		s.runMutex.Unlock()
		logrus.Warn("Geração de relatório já está em execução, ignorando disparo")
		return nil
	}
	s.runInProgress = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runInProgress = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	reportPath, err := s.reporter.Run(ctx)
	if err != nil {
		return err
	}

	logrus.WithField("report", reportPath).Info("Geração agendada de relatório concluída")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
