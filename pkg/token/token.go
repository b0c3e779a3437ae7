// Package token decodifica los claims del JWT emitido por el backend CRM.
// La firma NO se verifica aquí: el backend la valida en cada petición
// subsecuente; este lado solo necesita leer identidad, rol y expiración.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims subconjunto de claims que consume la aplicación: id, sub, role, exp.
type Claims struct {
	UserID    string
	Username  string
	Role      string
	ExpiresAt time.Time // cero si el token no trae exp
}

// Expired indica si el claim exp ya quedó estrictamente en el pasado.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Decode extrae los claims sin validar la firma. Error solo si el token no se
// puede decodificar; la expiración la decide el caller con Expired.
func Decode(tokenString string) (Claims, error) {
	parser := jwt.NewParser()
	var mc jwt.MapClaims
	if _, _, err := parser.ParseUnverified(tokenString, &mc); err != nil {
		return Claims{}, fmt.Errorf("token: decodificar: %w", err)
	}

	out := Claims{
		UserID:   claimString(mc, "id"),
		Username: claimString(mc, "sub"),
		Role:     claimString(mc, "role"),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// claimString lee un claim como string tolerando que el backend lo emita como
// número (el claim id llega numérico en algunos despliegues).
func claimString(mc jwt.MapClaims, key string) string {
	v, ok := mc[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	case int64:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
