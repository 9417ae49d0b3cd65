package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, a.String())
	assert.False(t, a.IsEqual(b))
	assert.Equal(t, a.String(), a.Bytes().String())
}

func TestUUIDFromString(t *testing.T) {
	accepted := map[string]string{
		"canonical": orderIDText,
		"braced":    "{" + orderIDText + "}",
		"urn":       "urn:uuid:" + orderIDText,
		"compact":   "550e8400e29b41d4a716446655440000",
	}
	for name, input := range accepted {
		t.Run("accepts "+name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err)
			assert.Equal(t, orderIDText, id.String())
		})
	}

	for _, input := range []string{
		"",
		"not-a-uuid",
		"550e8400-e29b-41d4-a716",
		orderIDText + "-extra",
		"550e8400-e29b-41d4-a716-44665544000g",
	} {
		_, err := kernel.UUIDFromString(input)
		require.Error(t, err, input)
		assert.Contains(t, err.Error(), "invalid UUID format")
	}
}

func TestUUIDFromBytes(t *testing.T) {
	parsed := uuid.MustParse(orderIDText)

	t.Run("should restore stored identifier", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes(parsed[:])

		require.NoError(t, err)
		assert.Equal(t, orderIDText, id.String())
	})

	t.Run("should reject short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(parsed[:3])
		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a, _ := kernel.UUIDFromString(orderIDText)
	b, _ := kernel.UUIDFromString("{" + orderIDText + "}")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
	assert.True(t, kernel.UUID{}.IsEqual(kernel.UUID{}))
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	nilID, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

	for _, id := range []kernel.UUID{zero, nilID} {
		err := id.Validate()
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}
