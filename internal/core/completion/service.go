package completion

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// UseCase は完了台帳ユースケースの公開インターフェースです。
type UseCase interface {
	CloseStation(ctx context.Context, in CloseStationInput) (*StationCompletion, error)
}

// Service はステーション完了の記録を扱います。冪等ではなく、二回目の
// 記録は監査のために「新規完了」と区別して ErrAlreadyClosed になります。
type Service struct {
	repo  Repository
	clock Clock
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// CloseStationInput はステーション完了の入力です。
type CloseStationInput struct {
	OrderID    string
	StationID  string
	OperatorID string
}

// CloseStation は完了事実を一度だけ記録します。重複は呼び出し側から
// 見れば無害ですが、黙って成功にはせず ErrAlreadyClosed を報告します。
func (s *Service) CloseStation(ctx context.Context, in CloseStationInput) (*StationCompletion, error) {
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return nil, ErrOrderRequired
	}
	stationID := strings.TrimSpace(in.StationID)
	if stationID == "" {
		return nil, ErrStationRequired
	}
	operatorID := strings.TrimSpace(in.OperatorID)
	if operatorID == "" {
		return nil, ErrOperatorRequired
	}

	return s.repo.Create(ctx, &StationCompletion{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		StationID:   stationID,
		OperatorID:  operatorID,
		CompletedAt: s.clock.Now(),
	})
}
