package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no operator credential is set.
	ErrAuthNotConfigured = errors.New("operator credential not configured")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication for the admin endpoints. The service
// holds a single operator credential configured through the environment; the
// optimizer itself stays pure with respect to caller identity.
type AuthService interface {
	// Login verifies the operator credential and issues an access token.
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	adminEmail        string
	adminPasswordHash string
	secretKey         []byte
	accessTokenTTL    time.Duration
}

// NewAuthService creates a new authentication service from configuration.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	return &AuthServiceImpl{
		adminEmail:        authConfig.AdminEmail,
		adminPasswordHash: authConfig.AdminPasswordHash,
		secretKey:         []byte(authConfig.JWTSecretKey),
		accessTokenTTL:    authConfig.AccessTokenTTL,
	}
}

// Login verifies the operator credential and issues a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}
	if email != s.adminEmail {
		// Burn a comparison anyway so the timing is the same for unknown
		// emails and wrong passwords.
		_ = bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}
	return nil, ErrInvalidToken
}

// generateAccessToken creates a new JWT access token for the operator.
func (s *AuthServiceImpl) generateAccessToken(email string) (string, error) {
	expirationTime := time.Now().Add(s.accessTokenTTL)

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{Email: email},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
