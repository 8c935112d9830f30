package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultConfigFile é o arquivo de configuração padrão do gerador
const DefaultConfigFile = "config.ini"

type Config struct {
	App      App      `mapstructure:",squash"`
	Database Database `mapstructure:"database"`
	Report   Report   `mapstructure:"report"`
	Email    Email    `mapstructure:"email"`
	Schedule Schedule `mapstructure:"schedule"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Database struct {
	Driver string `mapstructure:"db_driver"`
	Path   string `mapstructure:"db_path"`
}

type Report struct {
	OutputPath string `mapstructure:"output_path"`
}

type Email struct {
	SenderEmail    string `mapstructure:"sender_email"`
	SenderPassword string `mapstructure:"sender_password"`
	ReceiverEmail  string `mapstructure:"receiver_email"`
	SMTPServer     string `mapstructure:"smtp_server"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SendEmail      bool   `mapstructure:"send_email"`
}

type Schedule struct {
	CronSchedule string `mapstructure:"cron"`
	Enabled      bool   `mapstructure:"enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("database.db_driver", "sqlite3")
	viper.SetDefault("database.db_path", "sales_data.db")

	viper.SetDefault("report.output_path", "sales_report.xlsx")

	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.send_email", true)

	// Defaults para geração agendada de relatórios
	viper.SetDefault("schedule.cron", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("schedule.enabled", false)
}

// NewConfig carrega a configuração a partir do arquivo INI informado.
// A ausência do arquivo é um erro fatal: nenhuma outra etapa do
// pipeline pode executar sem configuração.
func NewConfig(path string) (*Config, error) {
	// Carregar variáveis locais do .env quando presente (apenas overrides)
	loadEnvFile()

	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("arquivo de configuração não encontrado: %s", path)
	}

	config := &Config{}

	// Estado global do viper zerado para que recargas não herdem
	// chaves de um arquivo anterior
	viper.Reset()

	SetDefaults()

	viper.SetConfigType("ini")
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de configuração %s: %w", path, err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar a configuração: %w", err)
	}

	return config, nil
}

// loadEnvFile carrega o arquivo .env quando existir no diretório atual
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Nenhum arquivo .env carregado: ", err)
		return
	}

	logrus.Info("Arquivo .env carregado com sucesso")
}
