package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestParseIdentity_OpaqueToken(t *testing.T) {
	id, err := ParseIdentity([]byte(`{"id":7,"username":"alice","token":"opaque","type":"Bearer","roles":["ROLE_USER"]}`))
	require.NoError(t, err)

	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "opaque", id.Token)
	assert.Nil(t, id.ExpiresAt)
	assert.Equal(t, float64(7), id.Claims["id"])
	assert.Equal(t, []any{"ROLE_USER"}, id.Claims["roles"])
	assert.False(t, id.Expired(time.Now()))
}

func TestParseIdentity_AccessTokenField(t *testing.T) {
	id, err := ParseIdentity([]byte(`{"username":"bob","accessToken":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", id.Token)
}

func TestParseIdentity_JWTExpiryAndSubject(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "carol", "exp": exp.Unix()})

	id, err := ParseIdentity([]byte(`{"token":"` + token + `"}`))
	require.NoError(t, err)

	require.NotNil(t, id.ExpiresAt)
	assert.True(t, exp.Equal(*id.ExpiresAt))
	assert.Equal(t, "carol", id.Username)
	assert.False(t, id.Expired(time.Now()))
	assert.True(t, id.Expired(exp.Add(time.Second)))
}

func TestParseIdentity_Errors(t *testing.T) {
	_, err := ParseIdentity([]byte(`not json`))
	require.ErrorContains(t, err, "decode identity")

	_, err = ParseIdentity([]byte(`{"username":"alice"}`))
	require.ErrorIs(t, err, common.ErrTokenMissing)
}

func TestIdentity_Expired_Nil(t *testing.T) {
	var id *Identity
	assert.False(t, id.Expired(time.Now()))
}

func TestMonths(t *testing.T) {
	m := Months()
	require.Len(t, m, 12)
	assert.Equal(t, MonthOption{Index: 0, Name: "January"}, m[0])
	assert.Equal(t, MonthOption{Index: 6, Name: "July"}, m[6])
	assert.Equal(t, MonthOption{Index: 11, Name: "December"}, m[11])
}
