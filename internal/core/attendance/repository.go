package attendance

import (
	"context"
	"time"
)

// Repository は打刻イベント永続化の抽象です。
type Repository interface {
	// FindLatestSince は since 以降で最新のイベントを返します。
	// 該当が無い場合は ErrEventNotFound を返します。
	FindLatestSince(ctx context.Context, operatorID string, since time.Time) (*Event, error)
	// Append はイベントを追記します。既存行の更新は行いません。
	Append(ctx context.Context, event *Event) (*Event, error)
}
