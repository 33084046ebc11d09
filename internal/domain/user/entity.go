package user

import "time"

type Role string

const (
	RoleSiswa Role = "STUDENT" // PKL student - journals and attendance
	RoleGuru  Role = "TEACHER" // Supervising teacher - reviews journals
	RoleAdmin Role = "ADMIN"   // School admin - manages windows and users
)

type User struct {
	ID              string
	Username        string
	Email           string
	Name            string
	NIS             *string // students only
	PasswordHash    *string
	Role            Role
	GuruID          *string // supervising teacher, students only
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSiswa checks if user is a PKL student
func (u *User) IsSiswa() bool {
	return u.Role == RoleSiswa
}

// IsGuru checks if user is a supervising teacher
func (u *User) IsGuru() bool {
	return u.Role == RoleGuru
}

// IsAdmin checks if user is a school admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DashboardPath maps a role to its dashboard root. Unrecognized roles land
// on the login page.
func DashboardPath(role Role) string {
	switch role {
	case RoleSiswa:
		return "/dashboard/jurnal"
	case RoleGuru:
		return "/dashboard/guru"
	case RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/auth/login"
	}
}
