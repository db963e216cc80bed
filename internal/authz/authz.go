// Package authz is the explicit policy layer that replaces the row-level
// security rules of the hosted backend this service grew out of. Every
// handler consults it before touching a resource; ownership checks (a partner
// may only see its own ledger) stay in the handlers, this package only
// answers role-level questions.
package authz

import "github.com/locacare/backend/internal/models"

type Actor struct {
	UserID int64
	Role   string
}

type Resource string

const (
	ResourceClients     Resource = "clients"
	ResourceChairs      Resource = "chairs"
	ResourcePlans       Resource = "plans"
	ResourceRentals     Resource = "rentals"
	ResourceWithdrawals Resource = "withdrawals"
	ResourcePartners    Resource = "partners"
)

// CanRead reports whether the actor may read the resource collection.
func CanRead(a Actor, r Resource) bool {
	switch a.Role {
	case models.RoleAdmin, models.RoleStaff:
		return true
	case models.RolePartner:
		return r == ResourceWithdrawals || r == ResourcePlans
	}
	return false
}

// CanWrite reports whether the actor may create or mutate the resource.
// Partner withdrawal submissions are the single partner-writable surface;
// deciding withdrawals is admin-only and checked via CanDecide.
func CanWrite(a Actor, r Resource) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleStaff:
		return r == ResourceClients || r == ResourceChairs || r == ResourceRentals || r == ResourcePlans
	case models.RolePartner:
		return r == ResourceWithdrawals
	}
	return false
}

// CanDecide reports whether the actor may settle a pending withdrawal.
func CanDecide(a Actor) bool {
	return a.Role == models.RoleAdmin
}

// CanManageUsers covers the privileged operations (partner creation, user
// deletion, password resets for others).
func CanManageUsers(a Actor) bool {
	return a.Role == models.RoleAdmin
}
