// Package session mantiene las sesiones establecidas del BFF. Reemplaza el
// almacenamiento ambiental del navegador por un store explícito e inyectable
// con ciclo de vida definido: Establish → Current* → Teardown.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
	"github.com/tu-usuario/crm-pro/pkg/token"
)

// Store registro de sesiones por id de cookie. Seguro para uso concurrente.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
	log      *logger.Logger
}

// NewStore construye el store vacío.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		sessions: map[string]entity.Session{},
		now:      time.Now,
		log:      log,
	}
}

// Establish decodifica los claims del token (sin verificar firma: eso lo hace
// el backend en cada petición) y crea la sesión. Un token indescifrable
// devuelve ErrInvalidToken; un exp en el pasado devuelve ErrTokenExpired y no
// deja nada persistido.
func (s *Store) Establish(bearer string) (string, entity.Session, error) {
	claims, err := token.Decode(bearer)
	if err != nil {
		return "", entity.Session{}, domain.ErrInvalidToken
	}
	if claims.Expired(s.now()) {
		s.log.Warn().Str("username", claims.Username).Msg("token expirado en login")
		return "", entity.Session{}, domain.ErrTokenExpired
	}

	sess := entity.Session{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
		Token:     bearer,
		ExpiresAt: claims.ExpiresAt,
	}
	sid := uuid.New().String()

	s.mu.Lock()
	s.sessions[sid] = sess
	s.mu.Unlock()

	s.log.Info().Str("username", sess.Username).Str("role", sess.Role).Msg("sesión establecida")
	return sid, sess, nil
}

// Current lectura no fallible. Una sesión cuyo exp ya pasó se desaloja en el
// acto y se reporta como inexistente: el token persistido no sobrevive a su
// expiración.
func (s *Store) Current(sid string) (entity.Session, bool) {
	if sid == "" {
		return entity.Session{}, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return entity.Session{}, false
	}

	if sess.Expired(s.now()) {
		s.Teardown(sid)
		return entity.Session{}, false
	}
	return sess, true
}

// Teardown elimina la sesión. Idempotente: borrar un sid inexistente es no-op.
func (s *Store) Teardown(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}
