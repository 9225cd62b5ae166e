package middleware

import (
	"context"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserEmail is where the resolved identity email is stored on the
// echo context.
const ContextKeyUserEmail = "userEmail"

// headerUserEmail is the unverified identity header accepted when Firebase
// verification is not configured. It matches the original ambient-identity
// model: whoever presents a seller's email is treated as that seller.
const headerUserEmail = "X-User-Email"

// IdentityMiddleware resolves the current user email for each request.
// With a Firebase project configured, a Bearer ID token is verified and its
// email claim wins; otherwise the plain header is trusted.
type IdentityMiddleware struct {
	authClient *auth.Client
}

// HeaderIdentity builds a middleware that trusts the identity header alone,
// with no token verification. It cannot fail.
func HeaderIdentity() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// NewIdentityMiddleware initializes Firebase verification when projectID is
// set. An empty projectID yields a header-only middleware, not an error.
func NewIdentityMiddleware(ctx context.Context, projectID string) (*IdentityMiddleware, error) {
	if projectID == "" {
		return HeaderIdentity(), nil
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &IdentityMiddleware{authClient: client}, nil
}

// Resolve attaches the caller's email to the context when one can be
// determined. It never rejects; handlers that need identity use RequireUser.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if email := m.emailFromToken(c); email != "" {
			c.Set(ContextKeyUserEmail, email)
			return next(c)
		}
		if email := strings.TrimSpace(c.Request().Header.Get(headerUserEmail)); email != "" {
			c.Set(ContextKeyUserEmail, email)
		}
		return next(c)
	}
}

// RequireUser rejects requests with no resolved identity.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if UserEmail(c) == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		return next(c)
	}
}

func (m *IdentityMiddleware) emailFromToken(c echo.Context) string {
	if m.authClient == nil {
		return ""
	}
	authz := c.Request().Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")
	token, err := m.authClient.VerifyIDToken(c.Request().Context(), tokenStr)
	if err != nil {
		return ""
	}
	if email, ok := token.Claims["email"].(string); ok {
		return email
	}
	return ""
}

// UserEmail returns the identity resolved for the request, or "".
func UserEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyUserEmail).(string)
	return email
}
