package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := map[string]kernel.Role{
		"customer":      kernel.Customer,
		"vendor":        kernel.Vendor,
		"deliveryAgent": kernel.DeliveryAgent,
		"admin":         kernel.Admin,
	}

	for name, expected := range testCases {
		t.Run(name, func(t *testing.T) {
			role, err := kernel.ParseRole(name)

			require.NoError(t, err)
			assert.Equal(t, expected, role)
			assert.Equal(t, name, role.String())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := kernel.ParseRole("courier")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.Vendor)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.Is(kernel.Vendor))
		assert.False(t, actor.Is(kernel.Admin))
		assert.True(t, actor.IsSelf(id))
		assert.False(t, actor.IsSelf(kernel.NewUUID()))
	})

	t.Run("should reject zero id and unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.UnknownRole)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
