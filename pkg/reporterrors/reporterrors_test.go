package reporterrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{name: "nil não é fatal", err: nil, fatal: false},
		{name: "falha de query é fatal", err: New(ErrDatabaseQuery, "fetch_sales", errors.New("no such table")), fatal: true},
		{name: "falha estrutural do relatório é fatal", err: New(ErrReportWorkbook, "write_workbook", errors.New("disco cheio")), fatal: true},
		{name: "falha de gráficos é absorvida", err: New(ErrReportCharts, "attach_charts", errors.New("aba inválida")), fatal: false},
		{name: "falha de e-mail é absorvida", err: New(ErrNotify, "send_email", errors.New("535 auth failed")), fatal: false},
		{name: "erro não classificado é fatal", err: errors.New("panic genérico"), fatal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestPipelineError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := New(ErrDatabaseConnect, "open_connection", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_001")
	assert.Contains(t, err.Error(), "open_connection")
}
