package worklog

import (
	"strings"
	"time"
)

// IntervalState は区間の開閉状態を表します。開区間は ended_at を
// 持ちませんが、状態自体は暗黙のヌル判定ではなく明示の列挙です。
type IntervalState string

const (
	StateOpen   IntervalState = "open"
	StateClosed IntervalState = "closed"
)

// WorkSegment は付加価値時間 (VA) の作業区間です。
// オペレーターごとに開区間は常に高々 1 つです。
type WorkSegment struct {
	ID         string
	OperatorID string
	OrderID    string
	StationID  string
	State      IntervalState
	StartedAt  time.Time
	EndedAt    *time.Time
}

// PauseReason は非付加価値時間 (NVA) の理由区分です。
type PauseReason string

const (
	ReasonWC      PauseReason = "wc"
	ReasonMedical PauseReason = "medical"
	ReasonRest    PauseReason = "rest"
	ReasonOther   PauseReason = "other"
)

// ParseReason は端末が送信する理由コードを区分に変換します。
// 端末の語彙は固定のため、未知の値は拒否せず other に畳み込みます。
func ParseReason(raw string) PauseReason {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "wc":
		return ReasonWC
	case "medico", "medical":
		return ReasonMedical
	case "descanso", "rest":
		return ReasonRest
	default:
		return ReasonOther
	}
}

// PauseInterval は休憩区間です。StationID は端末が報告した
// 最後の既知の位置で、不明な場合は nil です。
type PauseInterval struct {
	ID         string
	OperatorID string
	Reason     PauseReason
	StationID  *string
	State      IntervalState
	StartedAt  time.Time
	EndedAt    *time.Time
}

// ToggleTransition は ToggleWork がどちらの遷移を行ったかを表します。
type ToggleTransition string

const (
	TransitionOpened ToggleTransition = "opened"
	TransitionClosed ToggleTransition = "closed"
)

// ToggleWorkResult は ToggleWork の結果です。Segment は新しく
// 開いた区間で、Closed 遷移の場合は nil です。
type ToggleWorkResult struct {
	Transition ToggleTransition
	Segment    *WorkSegment
}
