// Package account provides the identity side of the parcel tracking system.
// It implements the Account record with its closed Role set and the Customer
// profile attached to customer accounts.
//
// The package includes:
//   - Role: the closed enumeration of actor roles consulted by the status engine
//   - Account: a login identity with a bcrypt password credential and a role
//   - Customer: the contact/billing profile paired one-to-one with a customer account
//
// Accounts and customers are plain records maintained by registration and the
// office CRUD endpoints. The parcel status engine never reads them directly;
// it receives the actor's role from the verified request context.
package account
