package mockdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/dberrors"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// CollectionsTable is created by the mock_collections migration.
const CollectionsTable = "mock_collections"

// PostgresSource stores each collection as a JSONB row.
type PostgresSource struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresSource creates a source over db.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *PostgresSource) loadQuery(collection string) (string, []interface{}, error) {
	return p.sb.Select("payload").
		From(CollectionsTable).
		Where(squirrel.Eq{"name": collection}).
		Limit(1).
		ToSql()
}

func (p *PostgresSource) saveQuery(collection string, data []byte) (string, []interface{}, error) {
	return p.sb.Insert(CollectionsTable).
		Columns("name", "payload", "updated_at").
		Values(collection, string(data), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
}

// Load implements Source.
func (p *PostgresSource) Load(ctx context.Context, collection string) ([]byte, error) {
	sql, args, err := p.loadQuery(collection)
	if err != nil {
		return nil, fmt.Errorf("failed to build load collection query: %w", err)
	}

	var payload []byte
	err = p.db.QueryRow(ctx, sql, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollectionAbsent
		}
		if dberrors.IsUndefinedTable(err) {
			logger.Error().Err(err).Str("table", CollectionsTable).Msg("Collections table missing, run migrations")
		}
		return nil, fmt.Errorf("%w: load collection %s: %v", apperrors.ErrStorage, collection, err)
	}
	return payload, nil
}

// Save implements Source.
func (p *PostgresSource) Save(ctx context.Context, collection string, data []byte) error {
	sql, args, err := p.saveQuery(collection, data)
	if err != nil {
		return fmt.Errorf("failed to build save collection query: %w", err)
	}

	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%w: save collection %s: %v", apperrors.ErrStorage, collection, err)
	}
	return nil
}
