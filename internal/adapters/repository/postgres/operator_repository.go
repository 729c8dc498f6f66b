package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/operator"
	pgdb "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
)

// OperatorRepository はオペレーターディレクトリへの読み取り専用実装です。
// ディレクトリは外部の管理システムが所有するため書き込み操作はありません。
type OperatorRepository struct {
	pool pgdb.Queryer
}

// NewOperatorRepository は OperatorRepository を生成します。
func NewOperatorRepository(pool pgdb.Queryer) *OperatorRepository {
	return &OperatorRepository{pool: pool}
}

// FindByTag はタグ識別子でオペレーターを検索します。
func (r *OperatorRepository) FindByTag(ctx context.Context, tagID string) (*operator.Operator, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, tag_id, display_name, status, created_at, updated_at
          FROM operators
         WHERE tag_id = $1
         LIMIT 1
    `, tagID)

	var op operator.Operator
	var status string
	if err := row.Scan(&op.ID, &op.TagID, &op.DisplayName, &status, &op.CreatedAt, &op.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, operator.ErrUnknownTag
		}
		return nil, err
	}
	op.Status = operator.Status(status)

	return &op, nil
}
