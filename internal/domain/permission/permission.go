// Package permission holds the single authorization table mapping a role and
// an operation to an allow decision. Every entry point consults this table
// instead of re-implementing role conditionals.
package permission

import "ledger/internal/domain/entity"

// Operation identifies a gated application operation.
type Operation string

const (
	// Inventory operations.
	OpSearchVehicles    Operation = "search_vehicles"
	OpGetVehicle        Operation = "get_vehicle"
	OpListReferenceData Operation = "list_reference_data"
	OpVehicleCounts     Operation = "vehicle_counts"
	OpAddVehicle        Operation = "add_vehicle"
	OpUpdateVehicle     Operation = "update_vehicle"

	// Parts operations.
	OpAddPartsOrder    Operation = "add_parts_order"
	OpUpdatePartStatus Operation = "update_part_status"
	OpAddVendor        Operation = "add_vendor"
	OpListVendors      Operation = "list_vendors"

	// Customer operations.
	OpAddCustomer    Operation = "add_customer"
	OpViewCustomer   Operation = "view_customer"
	OpUpdateCustomer Operation = "update_customer"
	OpDeleteCustomer Operation = "delete_customer"

	// Transaction operations.
	OpRecordSale     Operation = "record_sale"
	OpRecordPurchase Operation = "record_purchase"
	OpAcquireVehicle Operation = "acquire_vehicle"
	OpViewDeal       Operation = "view_deal"

	// Report operations.
	OpViewReports Operation = "view_reports"

	// Administration operations.
	OpRegisterUser   Operation = "register_user"
	OpChangeUserRole Operation = "change_user_role"

	// Search filter refinements. Filtering by VIN and by sold status are
	// gated separately from the search itself.
	OpFilterByVIN        Operation = "filter_by_vin"
	OpFilterBySoldStatus Operation = "filter_by_sold_status"
)

// table is the full {role x operation} grant matrix. Roles are cumulative:
// each row repeats the grants of the row above it plus its own.
var table = map[entity.Role]map[Operation]bool{
	entity.RolePublic: grants(
		OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts,
	),
	entity.RoleInventoryClerk: grants(
		OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts,
		OpAddVehicle, OpUpdateVehicle,
		OpAddPartsOrder, OpUpdatePartStatus, OpAddVendor, OpListVendors,
		OpFilterByVIN,
	),
	entity.RoleSalesperson: grants(
		OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts,
		OpAddVehicle, OpUpdateVehicle,
		OpAddPartsOrder, OpUpdatePartStatus, OpAddVendor, OpListVendors,
		OpFilterByVIN,
		OpAddCustomer, OpViewCustomer,
		OpRecordSale, OpRecordPurchase, OpAcquireVehicle, OpViewDeal,
	),
	entity.RoleManager: grants(
		OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts,
		OpAddVehicle, OpUpdateVehicle,
		OpAddPartsOrder, OpUpdatePartStatus, OpAddVendor, OpListVendors,
		OpFilterByVIN, OpFilterBySoldStatus,
		OpAddCustomer, OpViewCustomer,
		OpRecordSale, OpRecordPurchase, OpAcquireVehicle, OpViewDeal,
		OpViewReports,
	),
	entity.RoleOwner: grants(
		OpSearchVehicles, OpGetVehicle, OpListReferenceData, OpVehicleCounts,
		OpAddVehicle, OpUpdateVehicle,
		OpAddPartsOrder, OpUpdatePartStatus, OpAddVendor, OpListVendors,
		OpFilterByVIN, OpFilterBySoldStatus,
		OpAddCustomer, OpViewCustomer, OpUpdateCustomer, OpDeleteCustomer,
		OpRecordSale, OpRecordPurchase, OpAcquireVehicle, OpViewDeal,
		OpViewReports,
		OpRegisterUser, OpChangeUserRole,
	),
}

func grants(ops ...Operation) map[Operation]bool {
	m := make(map[Operation]bool, len(ops))
	for _, op := range ops {
		m[op] = true
	}

	return m
}

// Allowed reports whether the role may perform the operation. Unknown roles
// and unknown operations are both denied.
func Allowed(role entity.Role, op Operation) bool {
	return table[role][op]
}
