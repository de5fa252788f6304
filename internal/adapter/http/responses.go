package http

import (
	domain "loan-calculator/internal/domain/loan"
)

// Wire shapes: success is {"data":{"metric":...,"schedule":[...]}},
// failure is {"errors":[{"message":"..."}]}. No response ever mixes the
// two.

type errorEntry struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []errorEntry `json:"errors"`
}

func messageErrors(msgs ...string) errorsResponse {
	out := make([]errorEntry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, errorEntry{Message: m})
	}
	return errorsResponse{Errors: out}
}

// validationErrors renders each violation as a single message:
// `field`: message (invalid value: v)
func validationErrors(errs []domain.ValidationError) errorsResponse {
	out := make([]errorEntry, 0, len(errs))
	for _, e := range errs {
		msg := e.Message
		if e.Field != "" {
			msg = "`" + e.Field + "`: " + msg
		}
		if e.InvalidValue != "" {
			msg += " (invalid value: " + e.InvalidValue + ")"
		}
		out = append(out, errorEntry{Message: msg})
	}
	return errorsResponse{Errors: out}
}

type metric struct {
	CalculationDate string  `json:"calculationDate"`
	Instalments     int     `json:"instalments"`
	Amount          float64 `json:"amount"`
	InterestRate    float64 `json:"interestRate"`
}

type loanPayload struct {
	Metric   metric              `json:"metric"`
	Schedule []domain.Instalment `json:"schedule"`
}

type dataResponse struct {
	Data loanPayload `json:"data"`
}

func loanData(l *domain.Loan) dataResponse {
	return dataResponse{Data: loanPayload{
		Metric: metric{
			CalculationDate: l.Date.Format("2006-01-02"),
			Instalments:     l.Instalments,
			Amount:          l.Amount,
			InterestRate:    l.APR,
		},
		Schedule: l.Schedule,
	}}
}
