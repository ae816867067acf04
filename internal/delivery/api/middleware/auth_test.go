package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockservice "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockservice.MockTokenService) {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		prepare func(req *http.Request)
		token   string
	}{
		{
			name:    "bearer header",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer good-token") },
			token:   "good-token",
		},
		{
			name:    "legacy token header",
			prepare: func(req *http.Request) { req.Header.Set("token", "good-token") },
			token:   "good-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, tokenSvc := newAuthMiddleware(t)
			tokenSvc.EXPECT().ValidateToken(tt.token).Return(&service.Claims{
				UserID: userID,
				Roles:  []string{"user"},
			}, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			c := e.NewContext(req, httptest.NewRecorder())

			var gotID uuid.UUID
			var gotRoles entity.Roles
			err := mw.Authenticate(func(c echo.Context) error {
				gotID, _ = deliverycontext.GetUserID(c)
				gotRoles = deliverycontext.GetRoles(c)

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, userID, gotID)
			assert.Equal(t, entity.Roles{entity.RoleUser}, gotRoles)
		})
	}
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		mw, _ := newAuthMiddleware(t)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := mw.Authenticate(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("non bearer authorization", func(t *testing.T) {
		mw, _ := newAuthMiddleware(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := mw.Authenticate(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		mw, tokenSvc := newAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := mw.Authenticate(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("query token ignored without upgrade", func(t *testing.T) {
		mw, _ := newAuthMiddleware(t)
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/?token=abc", nil), httptest.NewRecorder())

		err := mw.Authenticate(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthMiddleware_Authenticate_WebSocketQueryToken(t *testing.T) {
	mw, tokenSvc := newAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("ws-token").Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{"admin"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/order/feed?token=ws-token", nil)
	req.Header.Set(echo.HeaderUpgrade, "websocket")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	called := false
	err := mw.Authenticate(func(c echo.Context) error {
		called = deliverycontext.IsAdmin(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw, _ := newAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("admin passes", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		deliverycontext.SetAuth(c, uuid.New(), entity.Roles{entity.RoleAdmin})

		assert.NoError(t, mw.RequireRole(entity.RoleAdmin)(next)(c))
	})

	t.Run("user is forbidden", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		deliverycontext.SetAuth(c, uuid.New(), entity.Roles{entity.RoleUser})

		assert.ErrorIs(t, mw.RequireRole(entity.RoleAdmin)(next)(c), domainerrors.ErrForbidden)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.ErrorIs(t, mw.RequireRole(entity.RoleAdmin)(next)(c), domainerrors.ErrUnauthorized)
	})
}
