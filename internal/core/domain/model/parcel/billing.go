package parcel

// Payment status labels produced by ResolvePaymentStatus, plus the initial
// label a parcel carries before billing runs.
const (
	PaymentStatusUnpaid     = "unpaid"
	PaymentStatusUnpaidCOD  = "unpaid (cash on delivery)"
	PaymentStatusMonthly    = "monthly invoice"
	PaymentStatusPrepaid    = "paid (prepaid)"
	PaymentStatusPaidOnline = "paid (online)"
)

// ResolvePaymentStatus maps a payment method to its payment-status label.
// It is a pure function with a closed mapping:
//
//	cash, cod -> unpaid (cash on delivery)
//	monthly   -> monthly invoice
//	prepaid   -> paid (prepaid)
//	otherwise -> paid (online)
//
// Unknown methods deliberately resolve to the online-paid label rather than
// failing; billing always succeeds once the amount is accepted.
func ResolvePaymentStatus(method string) string {
	switch method {
	case "cash", "cod":
		return PaymentStatusUnpaidCOD
	case "monthly":
		return PaymentStatusMonthly
	case "prepaid":
		return PaymentStatusPrepaid
	default:
		return PaymentStatusPaidOnline
	}
}
