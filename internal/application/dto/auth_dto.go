package dto

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser identidad visible de la sesión (lo que muestra la barra de
// navegación: saludo + gating del enlace Users).
type SessionUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse salida de login: la identidad decodificada del token.
type LoginResponse struct {
	User SessionUser `json:"user"`
}

// RegisterRequest entrada de POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RoleRequest entrada de PATCH /api/users/:id/role.
type RoleRequest struct {
	Role string `json:"role"`
}
