package completion

import "context"

// Repository は完了台帳永続化の抽象です。
type Repository interface {
	// Create は完了事実を挿入します。(order, station) の一意制約に
	// 違反した場合は ErrAlreadyClosed を返します。
	Create(ctx context.Context, completion *StationCompletion) (*StationCompletion, error)
}
