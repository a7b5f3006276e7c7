package parcel_test

import (
	"testing"

	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaymentStatus(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"cash", "unpaid (cash on delivery)"},
		{"cod", "unpaid (cash on delivery)"},
		{"monthly", "monthly invoice"},
		{"prepaid", "paid (prepaid)"},
		{"online", "paid (online)"},
		{"credit_card", "paid (online)"},
		{"", "paid (online)"},
		{"CASH", "paid (online)"}, // method matching is case-sensitive
	}

	for _, tt := range tests {
		t.Run("method "+tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, parcel.ResolvePaymentStatus(tt.method))
		})
	}
}
