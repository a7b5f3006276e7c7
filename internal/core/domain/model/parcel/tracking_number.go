package parcel

import (
	"fmt"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// trackingNumberPrefix is a display convention only. Uniqueness rests on the
// UUID-derived suffix, not on the prefix or the date part.
const trackingNumberPrefix = "TRK"

// TrackingNumber is the immutable, globally unique key of a parcel,
// formatted as TRK-<yyyymmdd>-<12 hex chars>. The date part exists for
// human readability; collision resistance comes entirely from the random
// suffix.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber allocates a tracking number for a parcel created at the
// given time.
func NewTrackingNumber(createdAt time.Time) TrackingNumber {
	suffix := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")[:12]
	return TrackingNumber{
		value: fmt.Sprintf("%s-%s-%s", trackingNumberPrefix, createdAt.Format("20060102"), suffix),
	}
}

// TrackingNumberFromString reconstructs a tracking number from persistence
// or from a request path. Only emptiness is rejected here: lookups with a
// well-formed but unknown number must surface NotFound, not a parse error.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking_number")
	}
	return TrackingNumber{value: s}, nil
}

// String returns the full tracking number, e.g. "TRK-20250115-3fa85f642b88".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was constructed and is non-empty.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	return nil
}
