package attendance

import (
	"context"
	"errors"
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

// UseCase は打刻ユースケースの公開インターフェースです。
type UseCase interface {
	RecordPunch(ctx context.Context, in RecordPunchInput) (*Event, error)
}

// Service は当日の最新イベントから入場/退場を交互に導出して打刻します。
type Service struct {
	repo  Repository
	clock Clock
	loc   *time.Location
}

// NewService は Service を生成します。loc は日付境界の判定に使う
// 工場のタイムゾーンで、nil の場合は UTC になります。
func NewService(repo Repository, clock Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, clock: clock, loc: loc}
}

// RecordPunchInput は打刻の入力です。
type RecordPunchInput struct {
	OperatorID string
}

// RecordPunch は当日分の最新イベントを参照して種別を決定し、追記します。
// 当日イベントが無い、または最新が退場の場合は入場、最新が入場の場合は
// 退場になります。日付境界は工場タイムゾーンのカレンダー日です。
func (s *Service) RecordPunch(ctx context.Context, in RecordPunchInput) (*Event, error) {
	operatorID := strings.TrimSpace(in.OperatorID)
	if operatorID == "" {
		return nil, ErrOperatorRequired
	}

	now := s.clock.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	kind := KindEntrance
	latest, err := s.repo.FindLatestSince(ctx, operatorID, dayStart)
	switch {
	case err == nil:
		if latest.Kind == KindEntrance {
			kind = KindExit
		}
	case errors.Is(err, ErrEventNotFound):
		// first punch of the day
	default:
		return nil, err
	}

	event := &Event{
		ID:         uuid.NewString(),
		OperatorID: operatorID,
		Kind:       kind,
		OccurredAt: now.UTC(),
	}

	return s.repo.Append(ctx, event)
}
