package operator

import "time"

// Status はオペレーターの在籍状態を表します。
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Operator は RFID タグで識別される作業者エンティティです。
// マスタデータは外部の管理システムが所有し、本サービスは読み取り専用です。
type Operator struct {
	ID          string
	TagID       string
	DisplayName string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Eligible はイベント受付対象の状態かどうかを返します。
func (o *Operator) Eligible() bool {
	return o != nil && o.Status == StatusActive
}
