package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/session"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "session"

// SessionMiddleware resuelve la cookie de sesión contra el store y deja la
// sesión en c.Locals. Sin sesión vigente responde 401; a un navegador que pide
// HTML lo manda a /login en su lugar.
func SessionMiddleware(store *session.Store, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		sess, ok := store.Current(sid)
		if !ok {
			if c.Accepts("json", "html") == "html" {
				return c.Redirect("/login", fiber.StatusSeeOther)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida o expirada"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// CurrentSession devuelve la sesión del contexto (después de SessionMiddleware).
func CurrentSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}

// RequireRole middleware que exige un rol exacto. Debe usarse DESPUÉS de
// SessionMiddleware (necesita LocalSession).
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if sess.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la operación requiere el rol " + role,
			})
		}
		return c.Next()
	}
}
