// Package gateway define los puertos hacia el backend REST del CRM. Los
// gateways no guardan estado: cada operación viaja con el bearer token de la
// sesión y el id del propietario a estampar en escrituras.
package gateway

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CRUD contrato uniforme de un recurso CRM. T es el registro que devuelve el
// backend; D el draft editable. El orden de List lo decide el backend.
type CRUD[T any, D any] interface {
	List(ctx context.Context, token string) ([]T, error)
	Create(ctx context.Context, token, ownerID string, draft D) (*T, error)
	Update(ctx context.Context, token, ownerID, id string, draft D) (*T, error)
	// Delete devuelve domain.ErrConflict cuando el backend rechaza el borrado
	// por integridad referencial (registro aún referenciado por dependientes).
	Delete(ctx context.Context, token, id string) error
}

// Auth puerto de autenticación contra el backend (emisión de tokens externa).
type Auth interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	Register(ctx context.Context, draft entity.UserDraft) error
}

// Users puerto de gestión de usuarios (solo ROLE_ADMIN).
type Users interface {
	List(ctx context.Context, token string) ([]entity.User, error)
	Create(ctx context.Context, token string, draft entity.UserDraft) (*entity.User, error)
	Update(ctx context.Context, token, id string, draft entity.UserDraft) (*entity.User, error)
	UpdateRole(ctx context.Context, token, id, role string) error
	Delete(ctx context.Context, token, id string) error
}

// Dashboard puerto de los dos agregados precomputados del dashboard.
type Dashboard interface {
	LeadsByStatus(ctx context.Context, token string) (map[string]int, error)
	AccountsByIndustry(ctx context.Context, token string) (map[string]int, error)
}
