package constants

import "fmt"

// Role string yang disimpan di claim JWT (ikut kontrak FE lama)
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// Template pesan error role
const (
	ErrOnlyUsersCanAccess      = "❌ Hanya user yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin event yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya super admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	UserOnly = []string{
		RoleUser,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
