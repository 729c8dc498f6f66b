package pullqueue

import "context"

// Repository は次作業指示解決のための読み取り専用アクセスです。
type Repository interface {
	// NextUncompleted は進行中の作業指示を予定開始の昇順 (未定は最後) で
	// 走査し、指定ステーションで未完了の先頭を返します。該当が無い
	// 場合は ErrNoEligibleOrder を返します。
	NextUncompleted(ctx context.Context, stationID string) (*ProductionOrder, error)
}
