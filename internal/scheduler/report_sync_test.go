package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestReportSyncService_StartDisabledDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa: o reporter não pode ser acionado
	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewReportSyncService(mockReporter, &config.Config{
		Schedule: config.Schedule{CronSchedule: "0 7 * * *", Enabled: false},
	})

	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestReportSyncService_GenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Run(gomock.Any()).Return("sales_report_20240115_070000.xlsx", nil)

	service := NewReportSyncService(mockReporter, &config.Config{
		Schedule: config.Schedule{CronSchedule: "0 7 * * *", Enabled: true},
	})

	err := service.GenerateReport(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 7 * * *", status["cron"])
}

func TestReportSyncService_GenerateReportPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Run(gomock.Any()).Return("", errors.New("no such table: sales"))

	service := NewReportSyncService(mockReporter, &config.Config{
		Schedule: config.Schedule{CronSchedule: "0 7 * * *", Enabled: true},
	})

	err := service.GenerateReport(context.Background())
	assert.Error(t, err)
}

func TestReportSyncService_InvalidCronFailsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewReportSyncService(mockReporter, &config.Config{
		Schedule: config.Schedule{CronSchedule: "não é cron", Enabled: true},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.Error(t, err)
}
