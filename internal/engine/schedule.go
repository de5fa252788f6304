package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"loan-calculator/internal/domain/loan"
)

// Calculation is one full schedule run. InstalmentAmount and TotalCost
// are computed once and reused for every row, so repeated rounding cannot
// drift between rows.
type Calculation struct {
	InstalmentAmount decimal.Decimal
	TotalCost        decimal.Decimal
	Schedule         []loan.Instalment
}

// Calculate generates the amortization schedule for a validated request.
// Per row: interest accrues actual/actual on the due month, capital is
// the instalment remainder, and the balance shrinks by the capital
// portion. The final row's interest is overridden so the interest column
// sums exactly to TotalCost, absorbing cumulative rounding drift; with a
// single instalment the override applies to the only row. For extreme
// inputs the override can push the last capital negative — inputs that
// far out are rejected upstream, and the behavior is kept as-is here.
func (e *Engine) Calculate(principal decimal.Decimal, n int, calculationDate time.Time) Calculation {
	instalmentAmount := e.InstalmentAmount(principal, n)
	totalCost := e.TotalCost(principal, instalmentAmount, n)

	remaining := principal
	interestSum := decimal.Zero
	rows := make([]loan.Instalment, 0, n)

	for i := 1; i <= n; i++ {
		due := InstalmentDueDate(calculationDate, i)

		interest := remaining.Mul(e.apr).
			Mul(decimal.NewFromInt(int64(DaysInMonth(due)))).
			Div(decimal.NewFromInt(int64(DaysInYear(due)))).
			Round(2)
		if i == n {
			interest = totalCost.Sub(interestSum).Round(2)
		}
		capital := instalmentAmount.Sub(interest).Round(2)

		rows = append(rows, loan.Instalment{
			InstalmentNumber: i,
			Month:            due.Format("2006-01"),
			InstalmentAmount: instalmentAmount.InexactFloat64(),
			Interest:         interest.InexactFloat64(),
			Capital:          capital.InexactFloat64(),
			RemainingCapital: remaining.InexactFloat64(),
		})

		remaining = remaining.Sub(capital).Round(2)
		interestSum = interestSum.Add(interest)
	}

	return Calculation{
		InstalmentAmount: instalmentAmount,
		TotalCost:        totalCost,
		Schedule:         rows,
	}
}
