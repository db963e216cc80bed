package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locacare/backend/internal/models"
)

func TestCanRead(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource Resource
		want     bool
	}{
		{name: "admin reads everything", role: models.RoleAdmin, resource: ResourceRentals, want: true},
		{name: "staff reads rentals", role: models.RoleStaff, resource: ResourceRentals, want: true},
		{name: "staff reads withdrawals", role: models.RoleStaff, resource: ResourceWithdrawals, want: true},
		{name: "partner reads own withdrawals", role: models.RolePartner, resource: ResourceWithdrawals, want: true},
		{name: "partner reads plans", role: models.RolePartner, resource: ResourcePlans, want: true},
		{name: "partner cannot read clients", role: models.RolePartner, resource: ResourceClients, want: false},
		{name: "partner cannot read rentals", role: models.RolePartner, resource: ResourceRentals, want: false},
		{name: "regular user reads nothing", role: models.RoleUser, resource: ResourcePlans, want: false},
		{name: "unknown role reads nothing", role: "ghost", resource: ResourceRentals, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRead(Actor{UserID: 1, Role: tt.role}, tt.resource))
		})
	}
}

func TestCanWrite(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource Resource
		want     bool
	}{
		{name: "admin writes everything", role: models.RoleAdmin, resource: ResourcePartners, want: true},
		{name: "staff writes rentals", role: models.RoleStaff, resource: ResourceRentals, want: true},
		{name: "staff writes clients", role: models.RoleStaff, resource: ResourceClients, want: true},
		{name: "staff cannot write withdrawals", role: models.RoleStaff, resource: ResourceWithdrawals, want: false},
		{name: "staff cannot manage partners", role: models.RoleStaff, resource: ResourcePartners, want: false},
		{name: "partner submits withdrawals", role: models.RolePartner, resource: ResourceWithdrawals, want: true},
		{name: "partner cannot write rentals", role: models.RolePartner, resource: ResourceRentals, want: false},
		{name: "regular user writes nothing", role: models.RoleUser, resource: ResourceWithdrawals, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanWrite(Actor{UserID: 1, Role: tt.role}, tt.resource))
		})
	}
}

func TestCanDecide(t *testing.T) {
	assert.True(t, CanDecide(Actor{Role: models.RoleAdmin}))
	assert.False(t, CanDecide(Actor{Role: models.RoleStaff}))
	assert.False(t, CanDecide(Actor{Role: models.RolePartner}))
	assert.False(t, CanDecide(Actor{Role: models.RoleUser}))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(Actor{Role: models.RoleAdmin}))
	assert.False(t, CanManageUsers(Actor{Role: models.RoleStaff}))
	assert.False(t, CanManageUsers(Actor{Role: models.RolePartner}))
}
