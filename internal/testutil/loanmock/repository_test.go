package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "loan-calculator/internal/domain/loan"
)

func TestRepo_FindByIDAndOwner(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: 3}

	called := false
	m := &Repo{
		FindByIDAndOwnerFn: func(gotCtx context.Context, id uint64, ownerID string) (*domain.Loan, error) {
			called = true
			if id != 3 || ownerID != "o" {
				t.Fatalf("args mismatch: id=%d owner=%q", id, ownerID)
			}
			return want, nil
		},
	}
	got, err := m.FindByIDAndOwner(ctx, 3, "o")
	if err != nil || got != want || !called {
		t.Fatalf("got=%v err=%v called=%v", got, err, called)
	}

	// Default (nil func) → ErrNotFound
	m = &Repo{}
	if _, err := m.FindByIDAndOwner(ctx, 3, "o"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("default err = %v, want ErrNotFound", err)
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 1}
	wantErr := errors.New("boom")

	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}

func TestRepo_ListByOwner(t *testing.T) {
	ctx := context.Background()
	m := &Repo{
		ListByOwnerFn: func(gotCtx context.Context, ownerID string, inactiveOnly bool, limit int) ([]domain.Loan, error) {
			if ownerID != "o" || !inactiveOnly || limit != 4 {
				t.Fatalf("args mismatch: %q %v %d", ownerID, inactiveOnly, limit)
			}
			return []domain.Loan{{ID: 9}}, nil
		},
	}
	got, err := m.ListByOwner(ctx, "o", true, 4)
	if err != nil || len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("got=%v err=%v", got, err)
	}

	// Default (nil func) → empty, nil error
	m = &Repo{}
	if got, err := m.ListByOwner(ctx, "o", false, 4); err != nil || got != nil {
		t.Fatalf("default: got=%v err=%v", got, err)
	}
}
