package loanmock

import (
	"context"

	domain "loan-calculator/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters report ErrNotFound; unset Save is a no-op.
type Repo struct {
	FindByIDAndOwnerFn func(ctx context.Context, id uint64, ownerID string) (*domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
	ListByOwnerFn      func(ctx context.Context, ownerID string, inactiveOnly bool, limit int) ([]domain.Loan, error)
}

func (m *Repo) FindByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*domain.Loan, error) {
	if m.FindByIDAndOwnerFn != nil {
		return m.FindByIDAndOwnerFn(ctx, id, ownerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string, inactiveOnly bool, limit int) ([]domain.Loan, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, inactiveOnly, limit)
	}
	return nil, nil
}
