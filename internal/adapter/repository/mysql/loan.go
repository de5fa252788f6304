package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loanDomain "loan-calculator/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx. The
// engine never opens transactions itself; callers that need the
// read-modify-write on one row to be atomic wrap it here.
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) FindByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) ListByOwner(ctx context.Context, ownerID string, inactiveOnly bool, limit int) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if inactiveOnly {
		q = q.Where("active = ?", false)
	}
	var out []loanDomain.Loan
	res := q.Order("cost DESC").Limit(limit).Find(&out)
	return out, res.Error
}
