package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/pullqueue"
	pgdb "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
)

// PullQueueRepository は次作業指示解決の PostgreSQL 実装です。
type PullQueueRepository struct {
	pool pgdb.Queryer
}

// NewPullQueueRepository は PullQueueRepository を生成します。
func NewPullQueueRepository(pool pgdb.Queryer) *PullQueueRepository {
	return &PullQueueRepository{pool: pool}
}

// NextUncompleted は指定ステーションで未完了の進行中作業指示のうち、
// 予定開始が最も早いもの (未定は最後) を 1 件返します。
func (r *PullQueueRepository) NextUncompleted(ctx context.Context, stationID string) (*pullqueue.ProductionOrder, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT o.id, o.order_number, o.status, o.scheduled_start, o.model_ref
          FROM production_orders o
         WHERE o.status = 'in_progress'
           AND NOT EXISTS (
               SELECT 1
                 FROM station_completions c
                WHERE c.order_id = o.id AND c.station_id = $1
           )
         ORDER BY o.scheduled_start ASC NULLS LAST, o.order_number ASC
         LIMIT 1
    `, stationID)

	var order pullqueue.ProductionOrder
	var status string
	if err := row.Scan(&order.ID, &order.OrderNumber, &status, &order.ScheduledStart, &order.ModelRef); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pullqueue.ErrNoEligibleOrder
		}
		return nil, err
	}
	order.Status = pullqueue.OrderStatus(status)

	return &order, nil
}
