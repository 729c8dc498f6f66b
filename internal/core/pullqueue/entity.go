package pullqueue

import "time"

// OrderStatus は作業指示のライフサイクル状態です。
type OrderStatus string

const (
	StatusPlanned    OrderStatus = "planned"
	StatusInProgress OrderStatus = "in_progress"
	StatusPaused     OrderStatus = "paused"
	StatusDone       OrderStatus = "done"
	StatusCancelled  OrderStatus = "cancelled"
)

// ProductionOrder は作業指示の読み取り専用ビューです。外部の計画
// システムが所有し、本サービスは書き込みません。
type ProductionOrder struct {
	ID             string
	OrderNumber    string
	Status         OrderStatus
	ScheduledStart *time.Time
	ModelRef       *string
}

// NextOrderResult は次作業指示の解決結果です。対象が無い場合
// Order は nil になり、エラーではなくキュー空として扱います。
type NextOrderResult struct {
	Order *ProductionOrder
}

// Empty はステーションに表示できる作業指示が無いかどうかを返します。
func (r *NextOrderResult) Empty() bool {
	return r == nil || r.Order == nil
}
