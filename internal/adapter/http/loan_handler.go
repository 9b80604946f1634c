package http

import (
	"net/http"

	"toolrental-backend/internal/adapter/middleware"
	"toolrental-backend/internal/usecase/loan"
	"toolrental-backend/pkg/dates"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	// Staff only; omitted on self-service loans.
	ClientID *uint64 `json:"client_id" validate:"omitempty,gte=1"`
	ToolID   uint64  `json:"tool_id" validate:"required,gte=1"`
	DueDate  string  `json:"due_date" validate:"required,isodate"`
}

type returnLoanReq struct {
	Condition string `json:"condition"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var req createLoanReq
	if er := decode(c, &req); er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	if req.ClientID != nil && id.Role != middleware.RoleAdmin {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only staff may lend on behalf of a client", Code: "forbidden"})
	}
	due, _ := dates.Parse(req.DueDate)

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		ClientID: req.ClientID,
		ToolID:   req.ToolID,
		DueDate:  due,
	}, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.ListMine(c.Request().Context(), id.Subject)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ReturnLoan(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	loanID, er := pathID(c)
	if er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	var req returnLoanReq
	if er := decode(c, &req); er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}

	dto, err := h.uc.Return(c.Request().Context(), loanID, loan.ReturnLoanInput{
		Condition: req.Condition,
		Actor:     id.Actor(),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	loanID, er := pathID(c)
	if er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	if err := h.uc.Delete(c.Request().Context(), loanID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
