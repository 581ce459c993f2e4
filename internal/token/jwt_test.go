package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/plantnet/plantnet-server/internal/model"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	in := model.SessionClaims{Email: "user@example.com", Role: model.RoleCustomer}

	tok, err := j.GenerateSessionToken(in)
	require.NoError(t, err)

	got, err := j.ParseSessionToken(tok)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestJWT_WrongSecret_Rejected(t *testing.T) {
	tok, err := NewJWT("secret").GenerateSessionToken(model.SessionClaims{Email: "a@b.c", Role: model.RoleCustomer})
	require.NoError(t, err)

	_, err = NewJWT("other").ParseSessionToken(tok)
	require.Error(t, err)
}

func TestJWT_TamperedToken_Rejected(t *testing.T) {
	j := NewJWT("secret")
	tok, err := j.GenerateSessionToken(model.SessionClaims{Email: "a@b.c", Role: model.RoleCustomer})
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = j.ParseSessionToken(tampered)
	require.Error(t, err)
}

func TestJWT_ExpiredToken_Rejected(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Email: "a@b.c",
		Role:  model.RoleCustomer,
	})
	tok, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseSessionToken(tok)
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod_Rejected(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@b.c"})
	tok, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseSessionToken(tok)
	require.Error(t, err)
}
