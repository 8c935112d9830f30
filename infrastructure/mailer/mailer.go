package mailer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/pkg/log"
	"github.com/vfg2006/sales-reporter/pkg/utils"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(ctx context.Context, reportPath string) error
}

type smtpMailer struct {
	emailConfig config.Email
}

func NewMailer(emailConfig config.Email) Mailer {
	return &smtpMailer{
		emailConfig: emailConfig,
	}
}

// Send envia o relatório como anexo para o destinatário configurado.
// A sessão usa STARTTLS com autenticação; o anexo vai em base64 com o
// nome base do arquivo no content-disposition (ambos tratados pelo
// gomail). O chamador decide o que fazer com a falha: para o pipeline
// o envio é melhor esforço.
func (m *smtpMailer) Send(ctx context.Context, reportPath string) error {
	logger := log.ForContext(ctx)

	now := time.Now()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.emailConfig.SenderEmail)
	msg.SetHeader("To", m.emailConfig.ReceiverEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Sales Report - %s", now.Format(utils.DateLayout)))
	msg.SetBody("text/plain", messageBody(now))
	msg.Attach(reportPath)

	logger.WithFields(log.Fields{
		"smtp_server": m.emailConfig.SMTPServer,
		"smtp_port":   m.emailConfig.SMTPPort,
		"receiver":    m.emailConfig.ReceiverEmail,
		"attachment":  filepath.Base(reportPath),
	}).Info("Enviando relatório por e-mail")

	dialer := gomail.NewDialer(
		m.emailConfig.SMTPServer,
		m.emailConfig.SMTPPort,
		m.emailConfig.SenderEmail,
		m.emailConfig.SenderPassword,
	)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("erro ao enviar e-mail para %s: %w", m.emailConfig.ReceiverEmail, err)
	}

	logger.Infof("E-mail enviado com sucesso para %s", m.emailConfig.ReceiverEmail)

	return nil
}

func messageBody(now time.Time) string {
	return fmt.Sprintf(`Hello,

Please find attached the automated sales report generated on %s.

The report includes:
- Summary sheet with aggregated sales data
- Detailed data sheet with all transactions
- Visual charts for quick insights

Best regards,
Automated Reporting System
`, now.Format(utils.TimestampLayout))
}
