package operator

import (
	"context"
	"fmt"
	"strings"
)

// UseCase はタグ解決ユースケースの公開インターフェースです。
type UseCase interface {
	ResolveTag(ctx context.Context, in ResolveTagInput) (*Operator, error)
}

// Service はタグ識別子からオペレーターを解決します。副作用はありません。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveTagInput はタグ解決の入力です。
type ResolveTagInput struct {
	TagID string
}

// ResolveTag はタグ識別子を検証し、受付可能なオペレーターを返します。
// 未知のタグは ErrUnknownTag、在籍状態が active 以外は
// ErrOperatorIneligible (状態詳細をラップ) になります。
func (s *Service) ResolveTag(ctx context.Context, in ResolveTagInput) (*Operator, error) {
	tagID := strings.TrimSpace(in.TagID)
	if tagID == "" {
		return nil, ErrTagRequired
	}

	op, err := s.repo.FindByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}

	if !op.Eligible() {
		return nil, fmt.Errorf("%w: status %s", ErrOperatorIneligible, op.Status)
	}

	return op, nil
}
