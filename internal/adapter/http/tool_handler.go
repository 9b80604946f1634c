package http

import (
	"net/http"

	"toolrental-backend/internal/adapter/middleware"
	"toolrental-backend/internal/usecase/tool"

	"github.com/labstack/echo/v4"
)

type ToolHandler struct{ uc *tool.Usecase }

func NewToolHandler(uc *tool.Usecase) *ToolHandler { return &ToolHandler{uc: uc} }

func (h *ToolHandler) ListTools(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ToolHandler) GetTool(c echo.Context) error {
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

func (h *ToolHandler) RegisterTool(c echo.Context) error {
	who, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var req tool.RegisterToolInput
	if er := decode(c, &req); er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.Register(c.Request().Context(), req, who.Actor())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ToolHandler) RetireTool(c echo.Context) error {
	who, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthorized(c)
	}
	id, er := pathID(c)
	if er != nil {
		return c.JSON(http.StatusBadRequest, er)
	}
	dto, err := h.uc.Retire(c.Request().Context(), id, who.Actor())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
