package auth

// Admin permission strings, grouped per role. Super-admins hold a strict
// superset of the admin permissions.
const (
	PermContentModerate = "content:moderate"
	PermContentWrite    = "content:write"
	PermContentDelete   = "content:delete"
	PermUsersRead       = "users:read"
	PermUsersWrite      = "users:write"
	PermInquiriesManage = "inquiries:manage"
	PermStatsRead       = "stats:read"
	PermExport          = "export:read"
	PermAdminsManage    = "admins:manage"
)

var adminPermissions = map[string][]string{
	"admin": {
		PermContentModerate,
		PermContentWrite,
		PermContentDelete,
		PermUsersRead,
		PermUsersWrite,
		PermInquiriesManage,
		PermStatsRead,
		PermExport,
	},
	"super-admin": {
		PermContentModerate,
		PermContentWrite,
		PermContentDelete,
		PermUsersRead,
		PermUsersWrite,
		PermInquiriesManage,
		PermStatsRead,
		PermExport,
		PermAdminsManage,
	},
}

// HasPermission reports whether the admin role carries the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := adminPermissions[role]
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
