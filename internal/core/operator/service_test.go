package operator

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeOperatorRepo struct {
	byTag map[string]*Operator
}

func newFakeOperatorRepo(ops ...*Operator) *fakeOperatorRepo {
	r := &fakeOperatorRepo{byTag: make(map[string]*Operator)}
	for _, op := range ops {
		r.byTag[op.TagID] = op
	}
	return r
}

func (r *fakeOperatorRepo) FindByTag(_ context.Context, tagID string) (*Operator, error) {
	op, ok := r.byTag[tagID]
	if !ok {
		return nil, ErrUnknownTag
	}
	clone := *op
	return &clone, nil
}

func TestService_ResolveTag_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := newFakeOperatorRepo(&Operator{
		ID:          "op-1",
		TagID:       "04A1B2C3D4",
		DisplayName: "Maria Santos",
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	svc := NewService(repo)

	resolved, err := svc.ResolveTag(context.Background(), ResolveTagInput{TagID: " 04A1B2C3D4 "})
	if err != nil {
		t.Fatalf("ResolveTag returned error: %v", err)
	}

	if resolved.ID != "op-1" {
		t.Errorf("expected operator op-1, got %s", resolved.ID)
	}
	if resolved.DisplayName != "Maria Santos" {
		t.Errorf("unexpected display name: %s", resolved.DisplayName)
	}
}

func TestService_ResolveTag_EmptyTag(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeOperatorRepo())

	if _, err := svc.ResolveTag(context.Background(), ResolveTagInput{TagID: "   "}); !errors.Is(err, ErrTagRequired) {
		t.Fatalf("expected ErrTagRequired, got %v", err)
	}
}

func TestService_ResolveTag_UnknownTag(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeOperatorRepo())

	if _, err := svc.ResolveTag(context.Background(), ResolveTagInput{TagID: "DEADBEEF"}); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestService_ResolveTag_IneligibleStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusInactive, StatusSuspended} {
		repo := newFakeOperatorRepo(&Operator{
			ID:     "op-2",
			TagID:  "04B2C3D4E5",
			Status: status,
		})
		svc := NewService(repo)

		_, err := svc.ResolveTag(context.Background(), ResolveTagInput{TagID: "04B2C3D4E5"})
		if !errors.Is(err, ErrOperatorIneligible) {
			t.Fatalf("status %s: expected ErrOperatorIneligible, got %v", status, err)
		}
	}
}
