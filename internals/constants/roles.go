package constants

import "fmt"

// Role adalah enumerasi tertutup untuk role_id di tabel users.
// Jangan pakai angka mentah di luar package ini.
type Role int

const (
	RoleAdmin   Role = 1
	RoleTeacher Role = 2
	RoleStudent Role = 3
)

var roleLabels = map[Role]string{
	RoleAdmin:   "Admin",
	RoleTeacher: "Teacher",
	RoleStudent: "Student",
}

// Label mengembalikan label tampilan untuk role (dihitung, tidak disimpan).
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return ""
}

func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
