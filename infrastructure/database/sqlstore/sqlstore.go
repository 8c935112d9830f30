package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vfg2006/sales-reporter/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre uma conexão com o banco configurado. O driver vem
// da configuração: sqlite3 (padrão, db_path é o arquivo) ou postgres
// (db_path é o DSN).
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	switch cfg.Driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("driver de banco de dados não suportado: %s", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
