package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/vfg2006/sales-reporter/infrastructure/database/sqlstore"
	"github.com/vfg2006/sales-reporter/internal/config"
	"github.com/vfg2006/sales-reporter/pkg/utils"
)

const (
	seedDays        = 90
	minSalesPerDay  = 5
	maxSalesPerDay  = 15
	maxQuantity     = 5
	createTableStmt = `
	CREATE TABLE IF NOT EXISTS sales (
		sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
		sale_date TEXT NOT NULL,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		total_amount REAL NOT NULL
	)`
)

type product struct {
	Name      string
	Category  string
	UnitPrice float64
}

// Catálogo de exemplo usado para popular a base de demonstração
var catalog = []product{
	{"Laptop", "Electronics", 899.99},
	{"Smartphone", "Electronics", 599.99},
	{"Headphones", "Electronics", 79.99},
	{"Office Chair", "Furniture", 249.99},
	{"Desk", "Furniture", 399.99},
	{"Monitor", "Electronics", 299.99},
	{"Keyboard", "Electronics", 49.99},
	{"Mouse", "Electronics", 29.99},
	{"Bookshelf", "Furniture", 179.99},
	{"Table Lamp", "Furniture", 39.99},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando geração de dados de exemplo...")
}

func main() {
	setupLogger()

	configPath := flag.String("config", config.DefaultConfigFile, "caminho do arquivo de configuração")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := sqlstore.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createTableStmt); err != nil {
		log.Fatalf("ERRO ao criar tabela sales: %v", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("ERRO ao abrir transação: %v", err)
	}

	inserted, err := insertSales(tx)
	if err != nil {
		_ = tx.Rollback()
		log.Fatalf("ERRO ao inserir vendas: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	printSummary(ctx, conn, cfg.Database.Path, inserted)
}

// insertSales gera vendas aleatórias dos últimos seedDays dias: entre
// minSalesPerDay e maxSalesPerDay vendas por dia, quantidade de 1 a
// maxQuantity, total_amount sempre igual a quantity * unit_price.
func insertSales(tx *sql.Tx) (int, error) {
	log.Printf("Gerando vendas de exemplo para os últimos %d dias...", seedDays)
	startTime := time.Now()

	stmt, err := tx.Prepare(`
	INSERT INTO sales (sale_date, product_name, category, quantity, unit_price, total_amount)
	VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	startDate := time.Now().AddDate(0, 0, -seedDays)
	inserted := 0

	for day := 0; day < seedDays; day++ {
		currentDate := startDate.AddDate(0, 0, day)
		dateStr := currentDate.Format(utils.DateLayout)

		numSales := minSalesPerDay + rand.Intn(maxSalesPerDay-minSalesPerDay+1)

		for i := 0; i < numSales; i++ {
			item := catalog[rand.Intn(len(catalog))]
			quantity := 1 + rand.Intn(maxQuantity)
			totalAmount := float64(quantity) * item.UnitPrice

			_, err := stmt.Exec(dateStr, item.Name, item.Category, quantity, item.UnitPrice, totalAmount)
			if err != nil {
				return inserted, err
			}
			inserted++
		}

		if day > 0 && day%30 == 0 {
			log.Printf("Progresso: %d/%d dias processados", day, seedDays)
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção concluída em %v. Vendas geradas: %d", elapsed, inserted)

	return inserted, nil
}

func printSummary(ctx context.Context, conn *sqlstore.Connection, dbPath string, inserted int) {
	var totalRecords int64
	var totalRevenue float64

	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM sales").
		Scan(&totalRecords, &totalRevenue); err != nil {
		log.Printf("AVISO: não foi possível calcular o resumo da base: %v", err)
		return
	}

	log.Println("============================================================")
	log.Println("BASE DE DADOS CRIADA COM SUCESSO!")
	log.Println("============================================================")
	log.Printf("Vendas inseridas nesta execução: %d", inserted)
	log.Printf("Total de registros: %d", totalRecords)
	log.Printf("Receita total: $%s", utils.FormatMoney(totalRevenue))
	log.Printf("Arquivo da base: %s", dbPath)
	log.Println("============================================================")
}
