package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
)

// DocumentsTableDDL cria a tabela usada pelos armazenamentos de snapshot e changelog
const DocumentsTableDDL = `
CREATE TABLE IF NOT EXISTS tracking_documents (
	namespace  TEXT        NOT NULL,
	key        VARCHAR(200) NOT NULL,
	content    BYTEA       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (namespace, key)
)`

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema cria as tabelas necessárias se ainda não existirem
func (c *Connection) EnsureSchema(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, DocumentsTableDDL)
	return err
}
