package parcel_test

import (
	"regexp"
	"testing"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	createdAt := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should embed the creation date and a 12 hex suffix", func(t *testing.T) {
		number := parcel.NewTrackingNumber(createdAt)

		pattern := regexp.MustCompile(`^TRK-20250115-[0-9a-f]{12}$`)
		assert.Regexp(t, pattern, number.String())
	})

	t.Run("should produce distinct numbers for the same instant", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			number := parcel.NewTrackingNumber(createdAt).String()
			assert.False(t, seen[number], "duplicate tracking number %s", number)
			seen[number] = true
		}
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("should accept any non-empty value", func(t *testing.T) {
		// Unknown but well-formed numbers must reach the repository and
		// surface NotFound there, so parsing is deliberately permissive.
		for _, value := range []string{"TRK-20250115-3fa85f642b88", "not-a-real-number"} {
			number, err := parcel.TrackingNumberFromString(value)

			require.NoError(t, err)
			assert.Equal(t, value, number.String())
		}
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := parcel.TrackingNumberFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var number parcel.TrackingNumber

		err := number.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should accept constructed value", func(t *testing.T) {
		number := parcel.NewTrackingNumber(time.Now())

		require.NoError(t, number.Validate())
	})
}

func TestTrackingNumber_IsEqual(t *testing.T) {
	a, err := parcel.TrackingNumberFromString("TRK-20250115-3fa85f642b88")
	require.NoError(t, err)
	b, err := parcel.TrackingNumberFromString("TRK-20250115-3fa85f642b88")
	require.NoError(t, err)
	c := parcel.NewTrackingNumber(time.Now())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
