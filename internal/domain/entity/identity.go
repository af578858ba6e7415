package entity

import "time"

// IdentityAccount is an authentication principal that may own a customer record.
type IdentityAccount struct {
	ID           string    // Account identifier, carried as the token subject.
	UserName     string    // Login name, also shown in account pickers.
	Email        string    // Contact email of the account.
	PasswordHash string    // bcrypt hash of the password.
	Roles        Roles     // Roles granted to the account.
	CreatedAt    time.Time // Timestamp of when the account was created.
}
