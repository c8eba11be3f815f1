package user

type Permission string

const (
	// Time clock
	PermissionTimeLogOwn     Permission = "timelog.own"
	PermissionTimeLogViewAll Permission = "timelog.view_all"

	// Rostering
	PermissionShiftViewOwn Permission = "shift.view_own"
	PermissionShiftViewAll Permission = "shift.view_all"
	PermissionShiftManage  Permission = "shift.manage"

	// Time off
	PermissionTimeOffRequest Permission = "timeoff.request"
	PermissionTimeOffApprove Permission = "timeoff.approve"

	// Payroll
	PermissionPayrollCompute Permission = "payroll.compute"

	// Employees and offices
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionOfficeView      Permission = "office.view"
	PermissionOfficeManage    Permission = "office.manage"

	// Settings
	PermissionSettingView   Permission = "setting.view"
	PermissionSettingManage Permission = "setting.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionTimeLogOwn,
		PermissionTimeLogViewAll,
		PermissionShiftViewOwn,
		PermissionShiftViewAll,
		PermissionShiftManage,
		PermissionTimeOffRequest,
		PermissionTimeOffApprove,
		PermissionPayrollCompute,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionOfficeView,
		PermissionOfficeManage,
		PermissionSettingView,
		PermissionSettingManage,
	},
	RoleManager: {
		PermissionTimeLogOwn,
		PermissionTimeLogViewAll,
		PermissionShiftViewOwn,
		PermissionShiftViewAll,
		PermissionShiftManage,
		PermissionTimeOffRequest,
		PermissionTimeOffApprove,
		PermissionPayrollCompute,
		PermissionEmployeeViewAll,
		PermissionOfficeView,
		PermissionSettingView,
	},
	RoleEmployee: {
		PermissionTimeLogOwn,
		PermissionShiftViewOwn,
		PermissionTimeOffRequest,
		PermissionOfficeView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
