package worklog

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

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase は作業/休憩の状態遷移ユースケースの公開インターフェースです。
type UseCase interface {
	ToggleWork(ctx context.Context, in ToggleWorkInput) (*ToggleWorkResult, error)
	StartPause(ctx context.Context, in StartPauseInput) (*PauseInterval, error)
}

// Service は作業区間と休憩区間の相互排他を扱う状態機械です。
// 排他の根拠はプロセス内ロックではなく、ストア側の条件付き更新と
// 部分一意インデックスです。
type Service struct {
	segments SegmentRepository
	pauses   PauseRepository
	clock    Clock
	tx       TransactionManager
}

// NewService は Service を生成します。
func NewService(segments SegmentRepository, pauses PauseRepository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{segments: segments, pauses: pauses, clock: clock, tx: tx}
}

// ToggleWorkInput は作業トグルの入力です。
type ToggleWorkInput struct {
	OperatorID string
	OrderID    string
	StationID  string
}

// ToggleWork は同一 (order, station) の開区間があれば閉じ、無ければ
// 休憩と他区間を閉じたうえで新しい区間を開きます。同時実行で二重に
// 開こうとした場合はストアの一意制約が ErrStateConflict を返します。
func (s *Service) ToggleWork(ctx context.Context, in ToggleWorkInput) (*ToggleWorkResult, error) {
	operatorID := strings.TrimSpace(in.OperatorID)
	if operatorID == "" {
		return nil, ErrOperatorRequired
	}
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return nil, ErrOrderRequired
	}
	stationID := strings.TrimSpace(in.StationID)
	if stationID == "" {
		return nil, ErrStationRequired
	}

	now := s.clock.Now()

	var result *ToggleWorkResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		closed, err := s.segments.CloseOpenMatching(txCtx, operatorID, orderID, stationID, now)
		if err != nil {
			return err
		}
		if closed {
			result = &ToggleWorkResult{Transition: TransitionClosed}
			return nil
		}

		// Opening a segment implicitly ends an open pause and any segment
		// left open on another order or station.
		if _, err := s.pauses.CloseOpenForOperator(txCtx, operatorID, now); err != nil {
			return err
		}
		if _, err := s.segments.CloseOpenForOperator(txCtx, operatorID, now); err != nil {
			return err
		}

		created, err := s.segments.CreateOpen(txCtx, &WorkSegment{
			ID:         uuid.NewString(),
			OperatorID: operatorID,
			OrderID:    orderID,
			StationID:  stationID,
			State:      StateOpen,
			StartedAt:  now,
		})
		if err != nil {
			return err
		}

		result = &ToggleWorkResult{Transition: TransitionOpened, Segment: created}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// StartPauseInput は休憩開始の入力です。StationID は任意で、
// 端末が報告した最後の既知の位置です。
type StartPauseInput struct {
	OperatorID string
	Reason     PauseReason
	StationID  *string
}

// StartPause は休憩区間を開きます。休憩は常に進行中の作業区間を
// 中断し、既に開いている休憩があれば防御的に閉じます。
// 休憩を終える明示の操作は無く、次の ToggleWork か StartPause が
// 暗黙に閉じます。
func (s *Service) StartPause(ctx context.Context, in StartPauseInput) (*PauseInterval, error) {
	operatorID := strings.TrimSpace(in.OperatorID)
	if operatorID == "" {
		return nil, ErrOperatorRequired
	}

	reason := in.Reason
	if reason == "" {
		reason = ReasonOther
	}

	now := s.clock.Now()

	var created *PauseInterval
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := s.segments.CloseOpenForOperator(txCtx, operatorID, now); err != nil {
			return err
		}
		if _, err := s.pauses.CloseOpenForOperator(txCtx, operatorID, now); err != nil {
			return err
		}

		pause, err := s.pauses.CreateOpen(txCtx, &PauseInterval{
			ID:         uuid.NewString(),
			OperatorID: operatorID,
			Reason:     reason,
			StationID:  cloneStationID(in.StationID),
			State:      StateOpen,
			StartedAt:  now,
		})
		if err != nil {
			return err
		}

		created = pause
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

func cloneStationID(stationID *string) *string {
	if stationID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*stationID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
