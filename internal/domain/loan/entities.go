package loan

import "time"

// Instalment is one row of an amortization schedule. All amounts are
// rounded to 2 decimal places when the row is produced; RemainingCapital
// is the balance before this instalment is paid.
type Instalment struct {
	InstalmentNumber int     `json:"instalmentNumber"`
	Month            string  `json:"month"`
	InstalmentAmount float64 `json:"instalmentAmount"`
	Interest         float64 `json:"interest"`
	Capital          float64 `json:"capital"`
	RemainingCapital float64 `json:"remainingCapital"`
}

// Loan is the persisted aggregate. Active is the only field mutated after
// creation; deactivation is a soft state change, never a delete.
type Loan struct {
	ID          uint64       `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     string       `gorm:"size:32;index:idx_loans_owner" json:"-"`
	Amount      float64      `gorm:"type:decimal(18,2)" json:"amount"`
	Instalments int          `gorm:"column:instalments" json:"instalments"`
	APR         float64      `gorm:"type:decimal(6,4);column:apr" json:"apr"`
	Schedule    []Instalment `gorm:"serializer:json" json:"schedule"`
	Cost        float64      `gorm:"type:decimal(18,2);index:idx_loans_cost_date_active,priority:1" json:"cost"`
	Date        time.Time    `gorm:"index:idx_loans_cost_date_active,priority:2" json:"date"`
	Active      bool         `gorm:"default:true;index:idx_loans_cost_date_active,priority:3" json:"active"`
}

func (Loan) TableName() string { return "loans" }
