package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "
	// legacyTokenHeader is the bare header older storefront clients send.
	legacyTokenHeader = "token"
	// tokenQueryParam carries the token for websocket upgrades, where browsers cannot set headers.
	tokenQueryParam = "token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates session tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Authenticate rejects requests without a valid session token and stores the
// subject and roles for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetAuth(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetUserID(c); !ok {
				return domainerrors.ErrUnauthorized
			}

			if !deliverycontext.HasRole(c, requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	req := c.Request()

	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if token := strings.TrimSpace(req.Header.Get(legacyTokenHeader)); token != "" {
		return token
	}

	if isWebSocketUpgrade(c) {
		return c.QueryParam(tokenQueryParam)
	}

	return ""
}

func isWebSocketUpgrade(c echo.Context) bool {
	return strings.EqualFold(c.Request().Header.Get(echo.HeaderUpgrade), "websocket")
}
