package middleware

import (
	"net/http"
	"strings"

	"toolrental-backend/internal/domain/client"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	RoleAdmin   = "admin"
	identityKey = "identity"
)

// Claims issued by the identity provider. RUT carries the national id.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	RUT   string `json:"RUT"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (cl Claims) Identity() client.Identity {
	return client.Identity{
		Subject:    cl.Subject,
		Name:       cl.Name,
		Email:      cl.Email,
		NationalID: cl.RUT,
		Phone:      cl.Phone,
		Role:       cl.Role,
	}
}

// Auth validates an HS256 bearer token and stores the caller identity on the
// echo context.
func Auth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFn := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token", "code": "unauthorized"})
			}
			var cl Claims
			tok, err := parser.ParseWithClaims(raw, &cl, keyFn)
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token", "code": "unauthorized"})
			}
			if strings.TrimSpace(cl.Subject) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token has no subject", "code": "unauthorized"})
			}
			SetIdentity(c, cl.Identity())
			return next(c)
		}
	}
}

// RequireRole rejects callers whose identity lacks role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok || id.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden", "code": "forbidden"})
			}
			return next(c)
		}
	}
}

func SetIdentity(c echo.Context, id client.Identity) { c.Set(identityKey, id) }

func IdentityFrom(c echo.Context) (client.Identity, bool) {
	id, ok := c.Get(identityKey).(client.Identity)
	return id, ok
}

func bearer(h string) (string, bool) {
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}
