package permission

import (
	"testing"

	"ledger/internal/domain/entity"
)

func TestAllowed_PublicOnlySearches(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts} {
		if !Allowed(entity.RolePublic, op) {
			t.Fatalf("Public should be allowed %s", op)
		}
	}
	for _, op := range []Operation{
		OpAddVehicle, OpUpdateVehicle, OpAddPartsOrder, OpAddVendor,
		OpAddCustomer, OpViewCustomer, OpRecordSale, OpViewReports,
		OpRegisterUser, OpFilterByVIN, OpFilterBySoldStatus,
	} {
		if Allowed(entity.RolePublic, op) {
			t.Fatalf("Public should be denied %s", op)
		}
	}
}

func TestAllowed_RolesAreCumulative(t *testing.T) {
	t.Parallel()

	// Every grant of a role must also be granted to the roles above it.
	order := []entity.Role{
		entity.RolePublic,
		entity.RoleInventoryClerk,
		entity.RoleSalesperson,
		entity.RoleManager,
		entity.RoleOwner,
	}

	for i := 0; i < len(order)-1; i++ {
		lower, higher := order[i], order[i+1]
		for op, allowed := range table[lower] {
			if allowed && !Allowed(higher, op) {
				t.Fatalf("%s is allowed %s but %s is not", lower, op, higher)
			}
		}
	}
}

func TestAllowed_RoleBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		role    entity.Role
		op      Operation
		allowed bool
	}{
		{name: "clerk adds vehicles", role: entity.RoleInventoryClerk, op: OpAddVehicle, allowed: true},
		{name: "clerk filters by vin", role: entity.RoleInventoryClerk, op: OpFilterByVIN, allowed: true},
		{name: "clerk cannot record sales", role: entity.RoleInventoryClerk, op: OpRecordSale, allowed: false},
		{name: "clerk cannot view customers", role: entity.RoleInventoryClerk, op: OpViewCustomer, allowed: false},
		{name: "clerk cannot filter by sold status", role: entity.RoleInventoryClerk, op: OpFilterBySoldStatus, allowed: false},
		{name: "salesperson records sales", role: entity.RoleSalesperson, op: OpRecordSale, allowed: true},
		{name: "salesperson acquires vehicles", role: entity.RoleSalesperson, op: OpAcquireVehicle, allowed: true},
		{name: "salesperson cannot view reports", role: entity.RoleSalesperson, op: OpViewReports, allowed: false},
		{name: "salesperson cannot delete customers", role: entity.RoleSalesperson, op: OpDeleteCustomer, allowed: false},
		{name: "manager views reports", role: entity.RoleManager, op: OpViewReports, allowed: true},
		{name: "manager filters by sold status", role: entity.RoleManager, op: OpFilterBySoldStatus, allowed: true},
		{name: "manager cannot register users", role: entity.RoleManager, op: OpRegisterUser, allowed: false},
		{name: "manager cannot change roles", role: entity.RoleManager, op: OpChangeUserRole, allowed: false},
		{name: "owner registers users", role: entity.RoleOwner, op: OpRegisterUser, allowed: true},
		{name: "owner changes roles", role: entity.RoleOwner, op: OpChangeUserRole, allowed: true},
		{name: "owner deletes customers", role: entity.RoleOwner, op: OpDeleteCustomer, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Allowed(tt.role, tt.op); got != tt.allowed {
				t.Fatalf("Allowed(%s, %s) = %v, want %v", tt.role, tt.op, got, tt.allowed)
			}
		})
	}
}

func TestAllowed_UnknownInputsDenied(t *testing.T) {
	t.Parallel()

	if Allowed(entity.Role("Superuser"), OpSearchVehicles) {
		t.Fatal("unknown roles must be denied")
	}
	if Allowed(entity.RoleOwner, Operation("drop_tables")) {
		t.Fatal("unknown operations must be denied")
	}
}
