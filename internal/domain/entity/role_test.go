package entity

import "testing"

func TestRoleFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "owner", input: "Owner", expected: RoleOwner},
		{name: "inventory clerk", input: "Inventory Clerk", expected: RoleInventoryClerk},
		{name: "salesperson", input: "Salesperson", expected: RoleSalesperson},
		{name: "manager", input: "Manager", expected: RoleManager},
		{name: "unrecognized falls back to public", input: "Superuser", expected: RolePublic},
		{name: "empty falls back to public", input: "", expected: RolePublic},
		{name: "case sensitive", input: "owner", expected: RolePublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoleFromString(tt.input); got != tt.expected {
				t.Fatalf("RoleFromString(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRole_IsAssignable(t *testing.T) {
	t.Parallel()

	for _, role := range []Role{RoleInventoryClerk, RoleSalesperson, RoleManager, RoleOwner} {
		if !role.IsAssignable() {
			t.Fatalf("%s.IsAssignable() = false, want true", role)
		}
	}
	if RolePublic.IsAssignable() {
		t.Fatal("Public must never be stored on an account")
	}
	if Role("Superuser").IsAssignable() {
		t.Fatal("invalid roles must not be assignable")
	}
}
