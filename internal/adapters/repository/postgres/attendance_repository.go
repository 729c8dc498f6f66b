package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/attendance"
	pgdb "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
)

// AttendanceRepository は打刻イベントの追記専用実装です。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// FindLatestSince は since 以降で最新の打刻イベントを返します。
func (r *AttendanceRepository) FindLatestSince(ctx context.Context, operatorID string, since time.Time) (*attendance.Event, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, operator_id, kind, occurred_at
          FROM attendance_events
         WHERE operator_id = $1 AND occurred_at >= $2
         ORDER BY occurred_at DESC, id DESC
         LIMIT 1
    `, operatorID, since)

	event, err := scanAttendanceEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// Append は打刻イベントを追記します。既存行は決して更新しません。
func (r *AttendanceRepository) Append(ctx context.Context, event *attendance.Event) (*attendance.Event, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO attendance_events (id, operator_id, kind, occurred_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, operator_id, kind, occurred_at
    `,
		event.ID,
		event.OperatorID,
		string(event.Kind),
		event.OccurredAt,
	)

	return scanAttendanceEvent(row)
}

func scanAttendanceEvent(row pgx.Row) (*attendance.Event, error) {
	var event attendance.Event
	var kind string
	if err := row.Scan(&event.ID, &event.OperatorID, &kind, &event.OccurredAt); err != nil {
		return nil, err
	}
	event.Kind = attendance.Kind(kind)
	return &event, nil
}
