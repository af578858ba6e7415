package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings_DropsUnknownRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"Administrator", "merchant", "Customer", ""})

	assert.Equal(t, Roles{RoleAdministrator, RoleCustomer}, roles)
}

func TestRoles_Primary(t *testing.T) {
	tests := []struct {
		name   string
		roles  Roles
		want   Role
		wantOK bool
	}{
		{name: "administrator", roles: Roles{RoleAdministrator}, want: RoleAdministrator, wantOK: true},
		{name: "customer", roles: Roles{RoleCustomer}, want: RoleCustomer, wantOK: true},
		{name: "customer wins over administrator", roles: Roles{RoleAdministrator, RoleCustomer}, want: RoleCustomer, wantOK: true},
		{name: "no roles", roles: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.roles.Primary()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomer_IsLinkedTo(t *testing.T) {
	owner := "U1"
	linked := &Customer{ID: 7, IdentityAccountID: &owner}
	unlinked := &Customer{ID: 8}

	assert.True(t, linked.IsLinkedTo("U1"))
	assert.False(t, linked.IsLinkedTo("U2"))
	assert.False(t, unlinked.IsLinkedTo("U1"))
}

func TestRating_IsValid(t *testing.T) {
	for _, r := range Ratings() {
		assert.True(t, r.IsValid(), r.String())
	}
	assert.False(t, Rating("E").IsValid())
	assert.Equal(t, RatingB, DefaultRating)
}
