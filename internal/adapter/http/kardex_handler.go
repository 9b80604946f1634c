package http

import (
	"net/http"
	"strings"
	"time"

	"toolrental-backend/internal/usecase/kardex"
	"toolrental-backend/pkg/dates"

	"github.com/labstack/echo/v4"
)

type KardexHandler struct{ uc *kardex.Usecase }

func NewKardexHandler(uc *kardex.Usecase) *KardexHandler { return &KardexHandler{uc: uc} }

// Query accepts toolName, startDate and endDate (YYYY-MM-DD), all optional.
func (h *KardexHandler) Query(c echo.Context) error {
	in := kardex.QueryInput{ToolName: strings.TrimSpace(c.QueryParam("toolName"))}

	var details []FieldError
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"startDate", &in.StartDate},
		{"endDate", &in.EndDate},
	} {
		raw := strings.TrimSpace(c.QueryParam(p.name))
		if raw == "" {
			continue
		}
		d, err := dates.Parse(raw)
		if err != nil {
			details = append(details, FieldError{Field: p.name, Message: "must be a date in YYYY-MM-DD format"})
			continue
		}
		*p.dst = &d
	}
	if len(details) > 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: "validation_failed", Details: details})
	}

	out, err := h.uc.Query(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
