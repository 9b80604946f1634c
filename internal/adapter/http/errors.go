package http

import (
	"errors"
	"net/http"
	"strconv"

	"toolrental-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrBusinessRule):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes client errors directly. Server errors are returned to
// echo so the HTTP error handler logs them.
func respondError(c echo.Context, err error) error {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		return err
	}
	return c.JSON(status, ErrorResponse{Error: err.Error(), Code: apperr.Code(err)})
}

// NewHTTPErrorHandler renders every unhandled error as an ErrorResponse.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var (
			status = StatusFor(err)
			body   = ErrorResponse{Error: err.Error(), Code: apperr.Code(err)}
		)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body = ErrorResponse{Error: http.StatusText(he.Code), Code: "http_" + strconv.Itoa(he.Code)}
			if msg, ok := he.Message.(string); ok {
				body.Error = msg
			}
		}
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
			if body.Code == "" {
				body = ErrorResponse{Error: "internal server error", Code: "internal"}
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to write error response")
		}
	}
}

// decode binds and validates req. A non-nil result is the 400 body.
func decode(c echo.Context, req any) *ErrorResponse {
	if err := c.Bind(req); err != nil {
		return &ErrorResponse{Error: "invalid body", Code: "invalid_body"}
	}
	if err := c.Validate(req); err != nil {
		return &ErrorResponse{Error: "validation failed", Code: "validation_failed", Details: ToFieldErrors(err)}
	}
	return nil
}

func pathID(c echo.Context) (uint64, *ErrorResponse) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &ErrorResponse{Error: "id must be a positive integer", Code: "invalid_id"}
	}
	return id, nil
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated", Code: "unauthorized"})
}
