package service

import (
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/internal/config"
	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/apperror"
)

func newAuthService(st *store.Store) AuthService {
	return NewAuthService(st, &config.Config{
		JWTSecret:     "test-secret",
		JWTTTLMinutes: 60,
	})
}

func TestSignupAndLogin(t *testing.T) {
	st := store.New()
	svc := newAuthService(st)

	signup, err := svc.Signup(dto.SignupInput{
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "rahasia-banget",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", signup.TokenType)
	assert.NotEmpty(t, signup.AccessToken)
	require.NotNil(t, signup.User)

	// The token's subject is the user id.
	token, err := jwt.ParseWithClaims(signup.AccessToken, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, strconv.Itoa(signup.User.ID), claims.Subject)

	login, err := svc.Login(dto.LoginInput{Username: "alice", Password: "rahasia-banget"})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	st := store.New()
	svc := newAuthService(st)

	_, err := svc.Signup(dto.SignupInput{
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "rahasia-banget",
	})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginInput{Username: "alice", Password: "salah"})
	require.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(dto.LoginInput{Username: "nobody", Password: "salah"})
	require.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestSignupDuplicateUsername(t *testing.T) {
	st := store.New()
	svc := newAuthService(st)

	input := dto.SignupInput{
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Password:    "rahasia-banget",
	}
	_, err := svc.Signup(input)
	require.NoError(t, err)

	_, err = svc.Signup(input)
	require.ErrorIs(t, err, apperror.ErrConflict)
}
