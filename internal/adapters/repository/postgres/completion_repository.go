package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/completion"
	pgdb "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
)

const (
	completionUniqueViolationCode     = "23505"
	completionForeignKeyViolationCode = "23503"
)

// CompletionRepository は完了台帳の PostgreSQL 実装です。一意性は
// アプリケーション側の確認ではなく (order_id, station_id) の一意制約で
// 保証します。
type CompletionRepository struct {
	pool pgdb.Queryer
}

// NewCompletionRepository は CompletionRepository を生成します。
func NewCompletionRepository(pool pgdb.Queryer) *CompletionRepository {
	return &CompletionRepository{pool: pool}
}

// Create は完了事実を挿入します。
func (r *CompletionRepository) Create(ctx context.Context, c *completion.StationCompletion) (*completion.StationCompletion, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO station_completions (id, order_id, station_id, operator_id, completed_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, order_id, station_id, operator_id, completed_at
    `,
		c.ID,
		c.OrderID,
		c.StationID,
		c.OperatorID,
		c.CompletedAt,
	)

	var created completion.StationCompletion
	if err := row.Scan(&created.ID, &created.OrderID, &created.StationID, &created.OperatorID, &created.CompletedAt); err != nil {
		return nil, translateCompletionPgError(err)
	}
	return &created, nil
}

func translateCompletionPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case completionUniqueViolationCode:
			return completion.ErrAlreadyClosed
		case completionForeignKeyViolationCode:
			return completion.ErrUnknownReference
		}
	}

	return err
}
