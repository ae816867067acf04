package handler

import (
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is accepted for date-only filters.
const dateLayout = "2006-01-02"

// currentUser returns the authenticated subject or ErrUnauthorized.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a uuid")
	}

	return id, nil
}

func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := parseID(raw, field)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// parseOptionalBool reads "true"/"false"; anything empty means unset.
func parseOptionalBool(raw, field string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be true or false")
	}

	return &v, nil
}

// parseOptionalTime accepts RFC 3339 timestamps or plain dates. With endOfDay a
// plain date covers the whole day.
func parseOptionalTime(raw, field string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}
