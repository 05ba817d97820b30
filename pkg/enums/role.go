package enums

import "fmt"

// Role represents a platform permissions role.
type Role string

const (
	RoleDepartmentAdmin Role = "department_admin"
	RoleCampaignPlanner Role = "campaign_planner"
	RoleFinanceOfficer  Role = "finance_officer"
	RoleAuditor         Role = "auditor"
	RoleSupplierAdmin   Role = "supplier_admin"
	RoleSupplierUser    Role = "supplier_user"
)

var validRoles = []Role{
	RoleDepartmentAdmin,
	RoleCampaignPlanner,
	RoleFinanceOfficer,
	RoleAuditor,
	RoleSupplierAdmin,
	RoleSupplierUser,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// SupplierScoped reports whether the role only sees rows owned by its own
// supplier affiliation.
func (r Role) SupplierScoped() bool {
	return r == RoleSupplierAdmin || r == RoleSupplierUser
}

// CanManageUsers reports whether the role may create and deactivate accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleDepartmentAdmin
}

// CanManageSuppliers reports whether the role may mutate supplier records.
func (r Role) CanManageSuppliers() bool {
	return r == RoleDepartmentAdmin
}

// Roles returns every known role.
func Roles() []Role {
	out := make([]Role, len(validRoles))
	copy(out, validRoles)
	return out
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
