// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a client of the catering business.
type Customer struct {
	ID                int64     // Server-assigned identifier, immutable after creation.
	Name              string    // Display name.
	Info              string    // Free-text notes.
	EmailAddress      string    // Primary contact email.
	Rating            Rating    // Commercial rating, B for new customers.
	CompanyName       string    // Company the customer belongs to, if any.
	VATNumber         string    // VAT registration number.
	Address           string    // Postal address.
	IdentityAccountID *string   // Identity account that owns this record under the Customer role.
	Version           int64     // Optimistic concurrency token, bumped on every update.
	CreatedAt         time.Time // Timestamp of when this customer was created.
	UpdatedAt         time.Time // Timestamp of the last modification.
}

// IsLinkedTo reports whether the record belongs to the given identity account.
func (c *Customer) IsLinkedTo(identityID string) bool {
	return c.IdentityAccountID != nil && *c.IdentityAccountID == identityID
}
