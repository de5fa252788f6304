package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domain "loan-calculator/internal/domain/loan"
	loanuc "loan-calculator/internal/usecase/loan"
)

// HeaderOwnerID carries the authenticated owner's id; session resolution
// itself is outside this service.
const HeaderOwnerID = "Ax-Owner-Id"

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type calculateReq struct {
	Amount      float64 `json:"amount" validate:"required,dec2"`
	Instalments int     `json:"instalments" validate:"required"`
}

// Calculate builds and persists a new loan calculation for the owner.
func (h *LoanHandler) Calculate(c echo.Context) error {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageErrors("missing or invalid "+HeaderOwnerID))
	}

	var req calculateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageErrors("invalid body"))
	}
	if err := c.Validate(&req); err != nil {
		out := make([]errorEntry, 0)
		for _, fe := range ToFieldErrors(err) {
			out = append(out, errorEntry{Message: "`" + fe.Field + "`: " + fe.Message})
		}
		return c.JSON(http.StatusBadRequest, errorsResponse{Errors: out})
	}

	rec, errs := h.uc.Create(c.Request().Context(), loanuc.CreateLoanInput{
		OwnerID:     ownerID,
		Amount:      req.Amount,
		Instalments: req.Instalments,
	})
	if len(errs) > 0 {
		// entries without a field are computation/store faults, not
		// client mistakes
		status := http.StatusBadRequest
		for _, e := range errs {
			if e.Field == "" {
				status = http.StatusInternalServerError
			}
		}
		return c.JSON(status, validationErrors(errs))
	}
	return c.JSON(http.StatusCreated, loanData(rec))
}

// Deactivate soft-disables an owner's loan; repeat calls succeed.
func (h *LoanHandler) Deactivate(c echo.Context) error {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageErrors("missing or invalid "+HeaderOwnerID))
	}

	loanID, err := strconv.ParseUint(c.Param("loanId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, messageErrors(domain.ErrNotFound.Error()))
	}

	if err := h.uc.Deactivate(c.Request().Context(), loanID, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageErrors(domain.ErrNotFound.Error()))
		}
		return c.JSON(http.StatusInternalServerError, messageErrors("loan could not be deactivated"))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "SUCCESS"})
}

// List returns the owner's loans, cost descending, at most four.
func (h *LoanHandler) List(c echo.Context) error {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, messageErrors("missing or invalid "+HeaderOwnerID))
	}

	inactiveOnly := c.QueryParam("inactiveOnly") == "1"
	entries, err := h.uc.List(c.Request().Context(), ownerID, inactiveOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageErrors("loan list unavailable"))
	}
	return c.JSON(http.StatusOK, entries)
}

func ownerFrom(c echo.Context) (string, bool) {
	id := c.Request().Header.Get(HeaderOwnerID)
	return id, ValidOwnerID(id)
}
