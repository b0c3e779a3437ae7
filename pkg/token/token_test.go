package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/pkg/token"
)

// forgeToken genera un JWT firmado con cualquier secreto: Decode no verifica
// la firma, solo lee los claims.
func forgeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-cualquiera"))
	require.NoError(t, err, "debe generarse el token de prueba")
	return tok
}

func TestDecode_ExtraeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := forgeToken(t, jwt.MapClaims{
		"id":   "42",
		"sub":  "alice",
		"role": "ROLE_SALES",
		"exp":  exp.Unix(),
	})

	claims, err := token.Decode(tok)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "ROLE_SALES", claims.Role)
	assert.True(t, exp.Equal(claims.ExpiresAt), "exp debe decodificarse como fecha")
}

func TestDecode_IDNumerico_SeConvierteAString(t *testing.T) {
	// Algunos despliegues del backend emiten el claim id como número.
	tok := forgeToken(t, jwt.MapClaims{
		"id":   7,
		"sub":  "bob",
		"role": "ROLE_USER",
	})

	claims, err := token.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID, "id numérico debe leerse como string")
}

func TestDecode_SinExp_NoExpiraNunca(t *testing.T) {
	tok := forgeToken(t, jwt.MapClaims{"id": "1", "sub": "carol", "role": "ROLE_USER"})

	claims, err := token.Decode(tok)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now().Add(24*time.Hour)),
		"sin claim exp el token no debe considerarse expirado")
}

func TestDecode_TokenMalformado_RetornaError(t *testing.T) {
	_, err := token.Decode("esto.no-es.un-jwt")
	assert.Error(t, err)
}

func TestClaims_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	vigente := token.Claims{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, vigente.Expired(now))

	vencido := token.Claims{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, vencido.Expired(now))
}
