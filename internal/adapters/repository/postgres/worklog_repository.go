package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/worklog"
	pgdb "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
)

const (
	worklogUniqueViolationCode     = "23505"
	worklogForeignKeyViolationCode = "23503"
)

// SegmentRepository は作業区間の PostgreSQL 実装です。close 系は
// state = 'open' の行だけを対象にした条件付き更新で、読み取り後の
// 書き込みによる競合を構造的に避けます。
type SegmentRepository struct {
	pool pgdb.Queryer
}

// NewSegmentRepository は SegmentRepository を生成します。
func NewSegmentRepository(pool pgdb.Queryer) *SegmentRepository {
	return &SegmentRepository{pool: pool}
}

// CloseOpenMatching は同一 (operator, order, station) の開区間を閉じます。
func (r *SegmentRepository) CloseOpenMatching(ctx context.Context, operatorID, orderID, stationID string, endedAt time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE work_segments
           SET state = 'closed', ended_at = $4
         WHERE operator_id = $1 AND order_id = $2 AND station_id = $3 AND state = 'open'
    `, operatorID, orderID, stationID, endedAt)
	if err != nil {
		return false, translateWorklogPgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// CloseOpenForOperator はオペレーターの開区間をすべて閉じます。
func (r *SegmentRepository) CloseOpenForOperator(ctx context.Context, operatorID string, endedAt time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE work_segments
           SET state = 'closed', ended_at = $2
         WHERE operator_id = $1 AND state = 'open'
    `, operatorID, endedAt)
	if err != nil {
		return false, translateWorklogPgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateOpen は開区間を挿入します。オペレーターごとの部分一意
// インデックスに当たった場合は ErrStateConflict になります。
func (r *SegmentRepository) CreateOpen(ctx context.Context, segment *worklog.WorkSegment) (*worklog.WorkSegment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO work_segments (id, operator_id, order_id, station_id, state, started_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, operator_id, order_id, station_id, state, started_at, ended_at
    `,
		segment.ID,
		segment.OperatorID,
		segment.OrderID,
		segment.StationID,
		string(segment.State),
		segment.StartedAt,
	)

	created, err := scanWorkSegment(row)
	if err != nil {
		return nil, translateWorklogPgError(err)
	}
	return created, nil
}

// PauseRepository は休憩区間の PostgreSQL 実装です。
type PauseRepository struct {
	pool pgdb.Queryer
}

// NewPauseRepository は PauseRepository を生成します。
func NewPauseRepository(pool pgdb.Queryer) *PauseRepository {
	return &PauseRepository{pool: pool}
}

// CloseOpenForOperator はオペレーターの開いている休憩をすべて閉じます。
func (r *PauseRepository) CloseOpenForOperator(ctx context.Context, operatorID string, endedAt time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE pause_intervals
           SET state = 'closed', ended_at = $2
         WHERE operator_id = $1 AND state = 'open'
    `, operatorID, endedAt)
	if err != nil {
		return false, translateWorklogPgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateOpen は休憩区間を挿入します。
func (r *PauseRepository) CreateOpen(ctx context.Context, pause *worklog.PauseInterval) (*worklog.PauseInterval, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO pause_intervals (id, operator_id, reason, station_id, state, started_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, operator_id, reason, station_id, state, started_at, ended_at
    `,
		pause.ID,
		pause.OperatorID,
		string(pause.Reason),
		pause.StationID,
		string(pause.State),
		pause.StartedAt,
	)

	created, err := scanPauseInterval(row)
	if err != nil {
		return nil, translateWorklogPgError(err)
	}
	return created, nil
}

func scanWorkSegment(row pgx.Row) (*worklog.WorkSegment, error) {
	var seg worklog.WorkSegment
	var state string
	if err := row.Scan(&seg.ID, &seg.OperatorID, &seg.OrderID, &seg.StationID, &state, &seg.StartedAt, &seg.EndedAt); err != nil {
		return nil, err
	}
	seg.State = worklog.IntervalState(state)
	return &seg, nil
}

func scanPauseInterval(row pgx.Row) (*worklog.PauseInterval, error) {
	var pause worklog.PauseInterval
	var state, reason string
	if err := row.Scan(&pause.ID, &pause.OperatorID, &reason, &pause.StationID, &state, &pause.StartedAt, &pause.EndedAt); err != nil {
		return nil, err
	}
	pause.Reason = worklog.PauseReason(reason)
	pause.State = worklog.IntervalState(state)
	return &pause, nil
}

func translateWorklogPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case worklogUniqueViolationCode:
			return worklog.ErrStateConflict
		case worklogForeignKeyViolationCode:
			return worklog.ErrUnknownReference
		}
	}

	return err
}
