package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/completion"
)

const insertCompletionQuery = `
        INSERT INTO station_completions (id, order_id, station_id, operator_id, completed_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, order_id, station_id, operator_id, completed_at
    `

func TestCompletionRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompletionRepository(mock)

	completedAt := time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "order_id", "station_id", "operator_id", "completed_at"}).
		AddRow("comp-1", "OP-2024-001", "EST-01", "op-1", completedAt)

	mock.ExpectQuery(regexp.QuoteMeta(insertCompletionQuery)).
		WithArgs("comp-1", "OP-2024-001", "EST-01", "op-1", completedAt).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &completion.StationCompletion{
		ID:          "comp-1",
		OrderID:     "OP-2024-001",
		StationID:   "EST-01",
		OperatorID:  "op-1",
		CompletedAt: completedAt,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.OrderID != "OP-2024-001" || !created.CompletedAt.Equal(completedAt) {
		t.Fatalf("unexpected completion %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompletionRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompletionRepository(mock)

	completedAt := time.Date(2024, 3, 8, 14, 31, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(insertCompletionQuery)).
		WithArgs("comp-2", "OP-2024-001", "EST-01", "op-2", completedAt).
		WillReturnError(&pgconn.PgError{Code: completionUniqueViolationCode, ConstraintName: "station_completions_order_id_station_id_key"})

	_, err = repo.Create(context.Background(), &completion.StationCompletion{
		ID:          "comp-2",
		OrderID:     "OP-2024-001",
		StationID:   "EST-01",
		OperatorID:  "op-2",
		CompletedAt: completedAt,
	})
	if !errors.Is(err, completion.ErrAlreadyClosed) {
		t.Fatalf("expected ErrAlreadyClosed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateCompletionPgError(t *testing.T) {
	t.Parallel()

	if !errors.Is(translateCompletionPgError(&pgconn.PgError{Code: completionForeignKeyViolationCode}), completion.ErrUnknownReference) {
		t.Fatalf("expected foreign key violation to map to ErrUnknownReference")
	}

	otherErr := errors.New("random")
	if translateCompletionPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}
