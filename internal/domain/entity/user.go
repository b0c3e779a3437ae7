package entity

// Roles válidos para User. Solo ROLE_ADMIN desbloquea la gestión de usuarios.
const (
	RoleUser    = "ROLE_USER"
	RoleAdmin   = "ROLE_ADMIN"
	RoleSales   = "ROLE_SALES"
	RoleSupport = "ROLE_SUPPORT"
)

// User usuario del CRM. A diferencia de los registros CRM, el recurso /users
// del backend usa snake_case en sus campos.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
