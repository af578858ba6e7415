package entity

// Caller is the authenticated principal of a single request.
type Caller struct {
	IdentityID string // Identity account ID taken from the access token subject.
	Role       Role   // Role that governs authorization decisions for this request.
}

// IsAdministrator reports whether the caller acts as an administrator.
func (c Caller) IsAdministrator() bool {
	return c.Role == RoleAdministrator
}
