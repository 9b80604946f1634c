package http

import (
	"net/http"

	"toolrental-backend/internal/adapter/middleware"
	"toolrental-backend/internal/usecase/fine"

	"github.com/labstack/echo/v4"
)

type FineHandler struct{ uc *fine.Usecase }

func NewFineHandler(uc *fine.Usecase) *FineHandler { return &FineHandler{uc: uc} }

func (h *FineHandler) ListFines(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FineHandler) MyFines(c echo.Context) error {
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

func (h *FineHandler) PayFine(c echo.Context) error {
	fineID, er := pathID(c)
	if er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.PayFine(c.Request().Context(), fineID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
