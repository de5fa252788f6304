package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "loan-calculator/internal/domain/loan"
	"loan-calculator/pkg/id"
)

// openTestDB creates an in-memory sqlite DB. The loans schema has no
// MySQL-only column types, so the domain model migrates as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(ownerID string, cost float64, active bool) *domain.Loan {
	return &domain.Loan{
		OwnerID:     ownerID,
		Amount:      6000,
		Instalments: 12,
		APR:         0.08,
		Schedule: []domain.Instalment{
			{InstalmentNumber: 1, Month: "2024-10", InstalmentAmount: 521.93, Interest: 41.31, Capital: 480.62, RemainingCapital: 6000},
		},
		Cost:   cost,
		Date:   time.Date(2024, time.September, 11, 18, 0, 0, 0, time.UTC),
		Active: active,
	}
}

func TestSaveAndFindByIDAndOwner(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	owner := id.NewID32()
	l := makeLoan(owner, 263.16, true)
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Save did not set auto-increment ID")
	}

	got, err := repo.FindByIDAndOwner(ctx, l.ID, owner)
	if err != nil {
		t.Fatalf("FindByIDAndOwner: %v", err)
	}
	if got.OwnerID != owner || got.Cost != 263.16 || !got.Active {
		t.Errorf("unexpected loan: %+v", got)
	}
	// schedule survives the JSON round trip
	if len(got.Schedule) != 1 || got.Schedule[0].InstalmentAmount != 521.93 {
		t.Errorf("schedule not restored: %+v", got.Schedule)
	}
}

func TestFindByIDAndOwner_WrongOwner(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan(id.NewID32(), 100, true)
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := repo.FindByIDAndOwner(ctx, l.ID, id.NewID32()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSave_DeactivatePersists(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	owner := id.NewID32()
	l := makeLoan(owner, 100, true)
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	l.Active = false
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.FindByIDAndOwner(ctx, l.ID, owner)
	if err != nil {
		t.Fatalf("FindByIDAndOwner: %v", err)
	}
	if got.Active {
		t.Fatalf("active flag not persisted as false")
	}
}

func TestListByOwner_OrderFilterLimit(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	owner := id.NewID32()
	costs := []float64{50, 300, 120, 80, 990}
	for i, c := range costs {
		active := i%2 == 0
		if err := repo.Save(ctx, makeLoan(owner, c, active)); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	// another owner's loan must never show up
	if err := repo.Save(ctx, makeLoan(id.NewID32(), 10_000, true)); err != nil {
		t.Fatalf("Save other owner: %v", err)
	}

	got, err := repo.ListByOwner(ctx, owner, false, 4)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 (capped)", len(got))
	}
	wantCosts := []float64{990, 300, 120, 80}
	for i, l := range got {
		if l.Cost != wantCosts[i] {
			t.Errorf("got[%d].Cost = %v, want %v", i, l.Cost, wantCosts[i])
		}
	}

	inactive, err := repo.ListByOwner(ctx, owner, true, 4)
	if err != nil {
		t.Fatalf("ListByOwner inactive: %v", err)
	}
	for _, l := range inactive {
		if l.Active {
			t.Errorf("inactiveOnly returned active loan %d", l.ID)
		}
	}
	if len(inactive) != 2 {
		t.Fatalf("inactive len = %d, want 2", len(inactive))
	}
}

func TestTx_RollsBackOnError(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	owner := id.NewID32()
	boom := errors.New("boom")
	err := repo.Tx(ctx, func(r domain.Repository) error {
		if err := r.Save(ctx, makeLoan(owner, 100, true)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Tx err = %v, want boom", err)
	}

	got, err := repo.ListByOwner(ctx, owner, false, 4)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rolled-back loan is visible: %+v", got)
	}
}
