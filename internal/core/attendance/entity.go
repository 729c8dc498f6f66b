package attendance

import "time"

// Kind は打刻イベントの種別を表します。
type Kind string

const (
	KindEntrance Kind = "entrance"
	KindExit     Kind = "exit"
)

// Event は打刻イベントです。追記専用で、当日の出退勤状態は
// 保存されたフラグではなく最新イベントから導出します。
type Event struct {
	ID         string
	OperatorID string
	Kind       Kind
	OccurredAt time.Time
}
