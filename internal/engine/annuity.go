package engine

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Engine computes amortization schedules for fixed-rate annuity loans.
// The annual rate and the number of instalments per year are fixed at
// construction; nothing here carries hidden defaults.
type Engine struct {
	apr            decimal.Decimal
	periodsPerYear int
}

func New(apr float64, periodsPerYear int) *Engine {
	return &Engine{apr: decimal.NewFromFloat(apr), periodsPerYear: periodsPerYear}
}

func (e *Engine) APR() float64 { return e.apr.InexactFloat64() }

// InstalmentAmount returns the fixed periodic payment that fully
// amortizes principal over n instalments:
//
//	p * (r * (1+r)^n) / ((1+r)^n - 1), r = apr / periodsPerYear
//
// rounded to 2 decimal places, half away from zero.
func (e *Engine) InstalmentAmount(principal decimal.Decimal, n int) decimal.Decimal {
	periodRate := e.apr.Div(decimal.NewFromInt(int64(e.periodsPerYear)))
	growth := one.Add(periodRate).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(periodRate.Mul(growth)).Div(growth.Sub(one)).Round(2)
}

// TotalCost is the interest paid over the life of the loan, derived from
// the instalment amount rather than the per-row interest sum. The
// schedule's last-instalment correction reconciles toward this value.
func (e *Engine) TotalCost(principal, instalmentAmount decimal.Decimal, n int) decimal.Decimal {
	return instalmentAmount.Mul(decimal.NewFromInt(int64(n))).Sub(principal).Round(2)
}
