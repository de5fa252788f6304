package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain "loan-calculator/internal/domain/loan"
	"loan-calculator/internal/engine"
)

// listLimit caps the listing query; the store index on (cost, date,
// active) serves it.
const listLimit = 4

type Usecase struct {
	repo domain.Repository
	eng  *engine.Engine
	now  func() time.Time
}

func NewUsecase(repo domain.Repository, eng *engine.Engine) *Usecase {
	return &Usecase{repo: repo, eng: eng, now: func() time.Time { return time.Now().UTC() }}
}

type CreateLoanInput struct {
	OwnerID     string
	Amount      float64
	Instalments int
}

type ListEntry struct {
	ID          uint64    `json:"id"`
	Amount      float64   `json:"amount"`
	Instalments int       `json:"instalments"`
	APR         float64   `json:"apr"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
	Active      bool      `json:"active"`
}

// Create validates the request, computes the full schedule, and persists
// the record as active. On any violation the complete error list comes
// back and nothing is computed or stored. A store failure surfaces as a
// single generic entry; a partially-computed record is never persisted.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*domain.Loan, []domain.ValidationError) {
	amount := decimal.NewFromFloat(in.Amount)
	if errs := engine.Validate(amount, in.Instalments); len(errs) > 0 {
		return nil, errs
	}

	calculationDate := u.now()
	calc := u.eng.Calculate(amount, in.Instalments, calculationDate)

	l := &domain.Loan{
		OwnerID:     in.OwnerID,
		Amount:      in.Amount,
		Instalments: in.Instalments,
		APR:         u.eng.APR(),
		Schedule:    calc.Schedule,
		Cost:        calc.TotalCost.InexactFloat64(),
		Date:        calculationDate,
		Active:      true,
	}
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, []domain.ValidationError{{Message: "loan calculation could not be saved"}}
	}
	return l, nil
}

// Deactivate flips the loan's active flag off. Deactivating an already
// inactive loan succeeds and re-persists the same state; a missing
// (id, owner) pair returns domain.ErrNotFound with nothing mutated.
func (u *Usecase) Deactivate(ctx context.Context, loanID uint64, ownerID string) error {
	l, err := u.repo.FindByIDAndOwner(ctx, loanID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	l.Active = false
	return u.repo.Save(ctx, l)
}

// List returns the owner's loans ordered by cost descending, capped at
// four entries, optionally restricted to deactivated ones.
func (u *Usecase) List(ctx context.Context, ownerID string, inactiveOnly bool) ([]ListEntry, error) {
	loans, err := u.repo.ListByOwner(ctx, ownerID, inactiveOnly, listLimit)
	if err != nil {
		return nil, err
	}

	out := make([]ListEntry, 0, len(loans))
	for _, l := range loans {
		out = append(out, ListEntry{
			ID:          l.ID,
			Amount:      l.Amount,
			Instalments: l.Instalments,
			APR:         l.APR,
			Cost:        l.Cost,
			Date:        l.Date,
			Active:      l.Active,
		})
	}
	return out, nil
}
