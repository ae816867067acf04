package entity

import "slices"

// Role grants access to a slice of the API. Customers hold RoleUser; the
// configured operator logs in through the admin endpoint and holds RoleAdmin.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var knownRoles = []Role{RoleUser, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the storefront roles.
func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the role set carried by a session token.
type Roles []Role

// Contains reports whether role is in the set.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the set for the token claim and the roles column.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses a token claim or stored column. Unknown and
// repeated entries are dropped.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !out.Contains(role) {
			out = append(out, role)
		}
	}

	return out
}
