package postgres

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/database/postgres"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
)

const (
	documentsTable = "tracking_documents"

	NamespaceSnapshots  = "snapshots"
	NamespaceChangelogs = "changelogs"
)

// Store guarda os documentos de uma namespace na tabela tracking_documents
type Store struct {
	conn      *postgres.Connection
	namespace string
}

func NewStore(conn *postgres.Connection, namespace string) *Store {
	return &Store{
		conn:      conn,
		namespace: namespace,
	}
}

func (s *Store) Get(key string) ([]byte, error) {
	query, args, err := buildGetQuery(s.namespace, key)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var content []byte
	err = s.conn.QueryRow(query, args...).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrapf(err, "erro ao buscar documento %s/%s", s.namespace, key)
	}

	return content, nil
}

func (s *Store) Put(key string, content []byte) error {
	query, args, err := buildPutQuery(s.namespace, key, content)
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = s.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func buildGetQuery(namespace, key string) (string, []interface{}, error) {
	return squirrel.
		Select("content").
		From(documentsTable).
		Where(squirrel.Eq{"namespace": namespace, "key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildPutQuery(namespace, key string, content []byte) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(documentsTable).
		Columns("namespace", "key", "content").
		Values(namespace, key, content).
		Suffix(`
			ON CONFLICT (namespace, key) DO UPDATE SET
				content = EXCLUDED.content,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
