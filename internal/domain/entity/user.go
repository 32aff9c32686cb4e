package entity

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleAccountant = "accountant"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleAccountant:
		return true
	}
	return false
}

// User representa un usuario del sistema.
// El ID lo genera la base de datos (BIGSERIAL); nunca se asigna en aplicación.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff, accountant
}
