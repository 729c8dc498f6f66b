package worklog

import (
	"context"
	"time"
)

// SegmentRepository は作業区間永続化の抽象です。Close 系の操作は
// 「state = open の行だけを閉じる」条件付き更新でなければならず、
// 閉じた行が有ったかどうかを返します。
type SegmentRepository interface {
	// CloseOpenMatching は同一 (operator, order, station) の開区間を閉じます。
	CloseOpenMatching(ctx context.Context, operatorID, orderID, stationID string, endedAt time.Time) (bool, error)
	// CloseOpenForOperator はオペレーターの開区間を無条件に閉じます。
	CloseOpenForOperator(ctx context.Context, operatorID string, endedAt time.Time) (bool, error)
	// CreateOpen は開区間を新規作成します。既に開区間が存在する場合、
	// ストアの一意制約により ErrStateConflict になります。
	CreateOpen(ctx context.Context, segment *WorkSegment) (*WorkSegment, error)
}

// PauseRepository は休憩区間永続化の抽象です。
type PauseRepository interface {
	CloseOpenForOperator(ctx context.Context, operatorID string, endedAt time.Time) (bool, error)
	CreateOpen(ctx context.Context, pause *PauseInterval) (*PauseInterval, error)
}
