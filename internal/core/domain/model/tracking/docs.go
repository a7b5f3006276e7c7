// Package tracking provides the audit trail side of the parcel domain: the
// immutable Event record appended for every accepted status transition and
// for billing.
//
// Events are append-only. They are totally ordered per parcel by timestamp,
// with insertion order as the tie-break, and they only disappear when their
// parcel is deleted.
package tracking
