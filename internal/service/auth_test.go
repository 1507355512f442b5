package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/fulfillment-service/config"
)

func newTestAuthService(t *testing.T, ttl time.Duration) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.AuthConfig{
		AdminEmail:        "ops@example.com",
		AdminPasswordHash: string(hash),
		JWTSecretKey:      "test-secret-key",
		AccessTokenTTL:    ttl,
	})
}

func TestAuthService_Login(t *testing.T) {
	authService := newTestAuthService(t, 15*time.Minute)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "ops@example.com",
			password: "correct-horse",
		},
		{
			name:     "wrong password",
			email:    "ops@example.com",
			password: "battery-staple",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "intruder@example.com",
			password: "correct-horse",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := authService.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, int64(900), resp.ExpiresIn)
		})
	}
}

func TestAuthService_Login_NotConfigured(t *testing.T) {
	authService := NewAuthService(config.AuthConfig{JWTSecretKey: "test-secret-key"})

	_, err := authService.Login(context.Background(), "ops@example.com", "anything")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	authService := newTestAuthService(t, 15*time.Minute)

	resp, err := authService.Login(context.Background(), "ops@example.com", "correct-horse")
	require.NoError(t, err)

	claims, err := authService.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Email)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	authService := newTestAuthService(t, 15*time.Minute)

	_, err := authService.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = authService.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	authService := newTestAuthService(t, -time.Minute)

	resp, err := authService.Login(context.Background(), "ops@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = authService.ValidateToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestAuthService(t, 15*time.Minute)
	resp, err := issuer.Login(context.Background(), "ops@example.com", "correct-horse")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	verifier := NewAuthService(config.AuthConfig{
		AdminEmail:        "ops@example.com",
		AdminPasswordHash: string(hash),
		JWTSecretKey:      "a-different-secret",
		AccessTokenTTL:    15 * time.Minute,
	})

	_, err = verifier.ValidateToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
