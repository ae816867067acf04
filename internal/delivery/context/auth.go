package context

import (
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetAuth stores the authenticated subject and roles in echo.Context.
func SetAuth(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyRoles, roles)
}

// GetUserID returns the authenticated subject set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the roles of the authenticated subject.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(constants.ContextKeyRoles).(entity.Roles)

	return roles
}

// HasRole reports whether the authenticated subject carries role.
func HasRole(c echo.Context, role entity.Role) bool {
	return GetRoles(c).Contains(role)
}

// IsAdmin is shorthand for HasRole(c, entity.RoleAdmin).
func IsAdmin(c echo.Context) bool {
	return HasRole(c, entity.RoleAdmin)
}
