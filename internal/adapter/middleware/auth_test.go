package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolrental-backend/internal/domain/client"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func sign(t *testing.T, method jwt.SigningMethod, key any, cl Claims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, cl).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func claims(sub, role string, exp time.Duration) Claims {
	return Claims{
		Name:  "Ana Pérez",
		Email: "ana@example.com",
		RUT:   "12.345.678-5",
		Phone: "+56911112222",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
		},
	}
}

// authEcho mounts a handler that echoes the resolved identity.
func authEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.JSON(http.StatusOK, id)
	}, mw...)
	return e
}

func get(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidTokenExposesIdentity(t *testing.T) {
	e := authEcho(Auth(secret))
	rec := get(e, "Bearer "+sign(t, jwt.SigningMethodHS256, secret, claims("sub-1", "", time.Hour)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var id client.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &id); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := client.Identity{
		Subject:    "sub-1",
		Name:       "Ana Pérez",
		Email:      "ana@example.com",
		NationalID: "12.345.678-5",
		Phone:      "+56911112222",
	}
	if id != want {
		t.Fatalf("identity = %+v, want %+v", id, want)
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	e := authEcho(Auth(secret))
	rec := get(e, "bearer "+sign(t, jwt.SigningMethodHS256, secret, claims("sub-1", "", time.Hour)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_Rejections(t *testing.T) {
	e := authEcho(Auth(secret))
	cases := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Basic dXNlcjpwYXNz",
		"empty token":     "Bearer ",
		"garbage":         "Bearer not.a.jwt",
		"wrong secret":    "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("some-other-secret-value"), claims("sub-1", "", time.Hour)),
		"expired":         "Bearer " + sign(t, jwt.SigningMethodHS256, secret, claims("sub-1", "", -time.Minute)),
		"no subject":      "Bearer " + sign(t, jwt.SigningMethodHS256, secret, claims("", "", time.Hour)),
		"other algorithm": "Bearer " + sign(t, jwt.SigningMethodHS512, secret, claims("sub-1", "", time.Hour)),
	}
	for name, authz := range cases {
		t.Run(name, func(t *testing.T) {
			rec := get(e, authz)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := authEcho(Auth(secret), RequireRole(RoleAdmin))

	rec := get(e, "Bearer "+sign(t, jwt.SigningMethodHS256, secret, claims("sub-1", "", time.Hour)))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client: expected 403, got %d", rec.Code)
	}
	rec = get(e, "Bearer "+sign(t, jwt.SigningMethodHS256, secret, claims("sub-2", RoleAdmin, time.Hour)))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}

	// without Auth in front there is no identity at all
	bare := authEcho(RequireRole(RoleAdmin))
	if rec := get(bare, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("anonymous: expected 403, got %d", rec.Code)
	}
}
