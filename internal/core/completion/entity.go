package completion

import "time"

// StationCompletion は「この作業指示のこのステーションは完了した」という
// 一度きりの事実です。(order, station) ごとに一意で、作成後は不変です。
type StationCompletion struct {
	ID          string
	OrderID     string
	StationID   string
	OperatorID  string
	CompletedAt time.Time
}
