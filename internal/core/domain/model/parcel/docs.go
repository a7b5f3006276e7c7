// Package parcel provides the core domain of the tracking system: the Parcel
// aggregate with its role-gated status state machine and billing fields.
//
// The package includes:
//   - Parcel: the aggregate root owning shipping attributes, billing and status
//   - Status: the closed status enumeration with the abnormal-state lock
//   - TrackingNumber: the immutable, globally unique parcel key
//   - ResolvePaymentStatus: the pure payment-method to payment-status mapping
//
// Key business rules:
//   - Customers may never change parcel status
//   - A parcel in LOST, DAMAGED or RETURNED is locked: non-admin actors may
//     only move it to PROCESSING or RETURNED; admins bypass the lock
//   - Driver and warehouse roles are restricted to fixed target-status sets;
//     staff and admin are unrestricted
//   - Weight is strictly positive; the billed amount is never negative
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
