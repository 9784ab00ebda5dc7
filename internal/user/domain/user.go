package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account adalah satu akun di file users. Key map file adalah username,
// jadi field Username tidak ikut di-serialize. Field password menyimpan
// bcrypt hash, bukan plaintext.
type Account struct {
	Username       string `json:"-"`
	PasswordHash   string `json:"password"`
	Role           string `json:"role"`
	RegisteredDate string `json:"registered_date,omitempty"`
}

// Session adalah identitas login yang hidup selama proses berjalan.
type Session struct {
	ID       string
	Username string
	Role     string
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type RegisterRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// AddUserRequest dipakai admin; berbeda dari register, rolenya bebas dipilih
// tapi hanya admin/user yang sah.
type AddUserRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=admin user"`
}
