package operator

import "context"

// Repository はオペレーターディレクトリへの読み取り専用アクセスです。
type Repository interface {
	// FindByTag はタグ識別子でオペレーターを検索します。
	// 該当が無い場合は ErrUnknownTag を返します。
	FindByTag(ctx context.Context, tagID string) (*Operator, error)
}
