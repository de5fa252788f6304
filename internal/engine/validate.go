package engine

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"loan-calculator/internal/domain/loan"
)

const (
	amountMin  = 1000
	amountMax  = 12000
	amountStep = 500

	instalmentsMin  = 3
	instalmentsMax  = 18
	instalmentsStep = 3
)

// Validate checks a loan request against the domain constraints. Rules run
// in a fixed order (amount bounds and step, then instalment bounds and
// step) and every failing rule appends one entry, so the caller sees all
// violations at once. An empty result means the request is valid.
func Validate(amount decimal.Decimal, instalments int) []loan.ValidationError {
	var errs []loan.ValidationError

	amountVal := amount.String()
	if amount.LessThan(decimal.NewFromInt(amountMin)) {
		errs = append(errs, loan.ValidationError{
			Field:        "amount",
			Message:      fmt.Sprintf("This value should be greater than or equal to %d.", amountMin),
			InvalidValue: amountVal,
		})
	}
	if amount.GreaterThan(decimal.NewFromInt(amountMax)) {
		errs = append(errs, loan.ValidationError{
			Field:        "amount",
			Message:      fmt.Sprintf("This value should be less than or equal to %d.", amountMax),
			InvalidValue: amountVal,
		})
	}
	if !amount.Mod(decimal.NewFromInt(amountStep)).IsZero() {
		errs = append(errs, loan.ValidationError{
			Field:        "amount",
			Message:      fmt.Sprintf("This value should be a multiple of %d.", amountStep),
			InvalidValue: amountVal,
		})
	}

	instalmentsVal := strconv.Itoa(instalments)
	if instalments < instalmentsMin {
		errs = append(errs, loan.ValidationError{
			Field:        "instalments",
			Message:      fmt.Sprintf("This value should be greater than or equal to %d.", instalmentsMin),
			InvalidValue: instalmentsVal,
		})
	}
	if instalments > instalmentsMax {
		errs = append(errs, loan.ValidationError{
			Field:        "instalments",
			Message:      fmt.Sprintf("This value should be less than or equal to %d.", instalmentsMax),
			InvalidValue: instalmentsVal,
		})
	}
	if instalments%instalmentsStep != 0 {
		errs = append(errs, loan.ValidationError{
			Field:        "instalments",
			Message:      fmt.Sprintf("This value should be a multiple of %d.", instalmentsStep),
			InvalidValue: instalmentsVal,
		})
	}

	return errs
}
