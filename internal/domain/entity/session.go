package entity

import "time"

// Session identidad autenticada derivada de los claims del token. El token se
// conserva para estamparlo en cada llamada al backend; la firma solo la
// verifica el backend en cada petición.
type Session struct {
	UserID    string
	Username  string
	Role      string
	Token     string
	ExpiresAt time.Time
}

// IsAdmin indica si la sesión desbloquea la gestión de usuarios.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Expired indica si el claim exp ya quedó en el pasado.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
