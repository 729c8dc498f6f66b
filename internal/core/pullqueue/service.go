package pullqueue

import (
	"context"
	"errors"
	"strings"
)

// UseCase はプルキューユースケースの公開インターフェースです。
type UseCase interface {
	NextOrderFor(ctx context.Context, in NextOrderInput) (*NextOrderResult, error)
}

// Service はステーションが次に表示すべき作業指示を解決します。
// 読み取りのみで、同時・反復呼び出しに対して安全です。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NextOrderInput は次作業指示解決の入力です。
type NextOrderInput struct {
	StationID string
}

// NextOrderFor は次の対象作業指示を返します。全件完了済みや進行中
// 指示が無い場合は空の結果を返し、エラーにはしません。
func (s *Service) NextOrderFor(ctx context.Context, in NextOrderInput) (*NextOrderResult, error) {
	stationID := strings.TrimSpace(in.StationID)
	if stationID == "" {
		return nil, ErrStationRequired
	}

	order, err := s.repo.NextUncompleted(ctx, stationID)
	if err != nil {
		if errors.Is(err, ErrNoEligibleOrder) {
			return &NextOrderResult{}, nil
		}
		return nil, err
	}

	return &NextOrderResult{Order: order}, nil
}
