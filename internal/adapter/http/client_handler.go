package http

import (
	"net/http"

	"toolrental-backend/internal/adapter/middleware"
	"toolrental-backend/internal/usecase/client"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct{ uc *client.Usecase }

func NewClientHandler(uc *client.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

// Me returns the caller's client record, creating it on first use.
func (h *ClientHandler) Me(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	dto, err := h.uc.Me(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req client.CreateClientInput
	if er := decode(c, &req); er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	id, er := pathID(c)
	if er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
