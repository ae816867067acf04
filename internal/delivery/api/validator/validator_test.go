package validator

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Size     string `json:"size" validate:"omitempty,size"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New(entity.DefaultSizeCatalog())

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(&sample{Email: "a@example.com", Password: "longenough", Size: "42"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sample{Email: "not-an-email", Password: "short"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "email must be a valid email")
		assert.Contains(t, err.Error(), "password must be at least 8")
	})

	t.Run("unknown size", func(t *testing.T) {
		err := v.Validate(&sample{Email: "a@example.com", Password: "longenough", Size: "99"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size is not a known size")
	})
}
