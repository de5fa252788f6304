package loan

import "context"

// Repository is the narrow store the engine depends on: one lookup and
// one write per operation, plus the owner-scoped listing query. Lookup
// returns ErrNotFound when nothing matches.
type Repository interface {
	FindByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByOwner(ctx context.Context, ownerID string, inactiveOnly bool, limit int) ([]Loan, error)
}
