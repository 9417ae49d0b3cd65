package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	t.Run("should create point within bounds", func(t *testing.T) {
		p, err := kernel.NewPoint(77.5946, 12.9716)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 77.5946, p.Lon(), 1e-9)
		assert.InDelta(t, 12.9716, p.Lat(), 1e-9)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		_, err := kernel.NewPoint(-180, 90)
		require.NoError(t, err)

		_, err = kernel.NewPoint(180, -90)
		require.NoError(t, err)
	})

	testCases := []struct {
		name     string
		lon, lat float64
		expected string
	}{
		{"longitude too small", -180.1, 0, "longitude"},
		{"longitude too large", 181, 0, "longitude"},
		{"latitude too small", 0, -90.5, "latitude"},
		{"latitude too large", 0, 91, "latitude"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.NewPoint(tc.lon, tc.lat)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), tc.expected)
		})
	}

	t.Run("should join both coordinate errors", func(t *testing.T) {
		_, err := kernel.NewPoint(200, 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
		assert.Contains(t, err.Error(), "latitude")
	})
}

func TestPoint_Validate(t *testing.T) {
	var p kernel.Point

	assert.Equal(t, kernel.ErrPointIsNotConstructed, p.Validate())
}

func TestPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewPoint(10, 20)
	b, _ := kernel.NewPoint(10, 20)
	c, _ := kernel.NewPoint(20, 10)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.Equal(t, "Point(10,20)", a.String())
}
