package reporterrors

import "fmt"

// Códigos de erro do pipeline de relatórios
const (
	// Erros fatais (encerram o processo com status 1)
	ErrConfigMissing    = "CFG_001" // Arquivo de configuração ausente
	ErrConfigInvalid    = "CFG_002" // Configuração inválida
	ErrDatabaseConnect  = "DB_001"  // Falha ao conectar ao banco de dados
	ErrDatabaseQuery    = "DB_002"  // Falha ao executar a query
	ErrTransform        = "TRF_001" // Falha no estágio de transformação
	ErrReportWorkbook   = "RPT_001" // Falha estrutural na escrita do relatório
	ErrInternal         = "SRV_001" // Erro não classificado

	// Erros absorvidos (registrados em log, execução continua)
	ErrReportCharts = "RPT_002" // Falha ao anexar gráficos
	ErrNotify       = "NTF_001" // Falha no envio do e-mail
)

// fatalMap indica, por código, se a falha encerra o processo
var fatalMap = map[string]bool{
	ErrConfigMissing:   true,
	ErrConfigInvalid:   true,
	ErrDatabaseConnect: true,
	ErrDatabaseQuery:   true,
	ErrTransform:       true,
	ErrReportWorkbook:  true,
	ErrInternal:        true,
	ErrReportCharts:    false,
	ErrNotify:          false,
}

// PipelineError representa uma falha classificada de uma etapa do pipeline
type PipelineError struct {
	Code      string
	Operation string
	Cause     error
}

func (e *PipelineError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Operation)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Operation, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// New cria um erro classificado envolvendo a causa original
func New(code string, operation string, cause error) *PipelineError {
	return &PipelineError{
		Code:      code,
		Operation: operation,
		Cause:     cause,
	}
}

// IsFatal informa se o erro deve encerrar o processo. Erros não
// classificados são tratados como fatais.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	if pipelineErr, ok := err.(*PipelineError); ok {
		if fatal, exists := fatalMap[pipelineErr.Code]; exists {
			return fatal
		}
	}

	return true
}
