package auth

import "github.com/dmitrijs2005/fleetkeeper/internal/common"

// Operation names a protected action on the HTTP surface.
type Operation string

const (
	OpVehicleRead   Operation = "vehicle:read"
	OpVehicleWrite  Operation = "vehicle:write"
	OpVehicleDelete Operation = "vehicle:delete"

	OpComponentRead   Operation = "component:read"
	OpComponentWrite  Operation = "component:write"
	OpComponentDelete Operation = "component:delete"

	OpMaintenanceRead   Operation = "maintenance:read"
	OpMaintenanceWrite  Operation = "maintenance:write"
	OpMaintenanceDelete Operation = "maintenance:delete"

	OpExpiringPartRead   Operation = "expiring_part:read"
	OpExpiringPartWrite  Operation = "expiring_part:write"
	OpExpiringPartDelete Operation = "expiring_part:delete"
)

// rolePermissions is the single source of truth for authorization: every
// protected route declares its Operation and the middleware consults this
// table. Admins hold every operation; techs hold reads and writes but no
// deletes. Unknown roles hold nothing.
var rolePermissions = map[string][]Operation{
	common.AdminRole: {
		OpVehicleRead, OpVehicleWrite, OpVehicleDelete,
		OpComponentRead, OpComponentWrite, OpComponentDelete,
		OpMaintenanceRead, OpMaintenanceWrite, OpMaintenanceDelete,
		OpExpiringPartRead, OpExpiringPartWrite, OpExpiringPartDelete,
	},
	common.DefaultRole: {
		OpVehicleRead, OpVehicleWrite,
		OpComponentRead, OpComponentWrite,
		OpMaintenanceRead, OpMaintenanceWrite,
		OpExpiringPartRead, OpExpiringPartWrite,
	},
}

// Allowed reports whether the role holds the operation.
func Allowed(role string, op Operation) bool {
	for _, allowed := range rolePermissions[role] {
		if allowed == op {
			return true
		}
	}
	return false
}
