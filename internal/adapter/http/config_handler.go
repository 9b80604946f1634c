package http

import (
	"net/http"

	domain "toolrental-backend/internal/domain/configuration"
	"toolrental-backend/internal/usecase/configuration"

	"github.com/labstack/echo/v4"
)

// feeKeys maps the public fee names to stored configuration keys.
var feeKeys = map[string]string{
	"late-fee":   domain.KeyDailyLateFee,
	"repair-fee": domain.KeyRepairFee,
	"rental-fee": domain.KeyDailyRentalFee,
}

type ConfigHandler struct{ uc *configuration.Usecase }

func NewConfigHandler(uc *configuration.Usecase) *ConfigHandler { return &ConfigHandler{uc: uc} }

type setFeeReq struct {
	Value *int64 `json:"value" validate:"required"`
}

func (h *ConfigHandler) GetFee(c echo.Context) error {
	key, ok := feeKeys[c.Param("name")]
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown fee", Code: "unknown_fee"})
	}
	dto, err := h.uc.GetFee(c.Request().Context(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ConfigHandler) SetFee(c echo.Context) error {
	key, ok := feeKeys[c.Param("name")]
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown fee", Code: "unknown_fee"})
	}
	var req setFeeReq
	if er := decode(c, &req); er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.SetFee(c.Request().Context(), key, *req.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
