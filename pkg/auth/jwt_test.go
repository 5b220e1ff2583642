package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret, time.Hour)
	userID := uuid.New()

	token, err := jwtService.GenerateJWT(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject())
	assert.Equal(t, Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.Id)
	assert.InDelta(t, time.Hour.Seconds(), claims.Remaining(time.Now()).Seconds(), 5)
}

func TestGenerateJWT_UniqueTokenIDs(t *testing.T) {
	jwtService := NewJWTService(testSecret, time.Hour)
	userID := uuid.New()

	first, err := jwtService.GenerateJWT(userID)
	require.NoError(t, err)
	second, err := jwtService.GenerateJWT(userID)
	require.NoError(t, err)

	c1, err := jwtService.ValidateToken(first)
	require.NoError(t, err)
	c2, err := jwtService.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.Id, c2.Id)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, time.Hour)

	sign := func(claims jwt.Claims, secret string) string {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		return token
	}

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(uuid.New())
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := NewJWTService(testSecret, -time.Hour).GenerateJWT(uuid.New())
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret", time.Hour).GenerateJWT(uuid.New())
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Missing User",
			setup: func() string {
				return sign(jwt.StandardClaims{
					Id:        uuid.NewString(),
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    Issuer,
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				return sign(Claims{
					UserID: uuid.NewString(),
					StandardClaims: jwt.StandardClaims{
						Id:        uuid.NewString(),
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Missing Token ID",
			setup: func() string {
				return sign(Claims{
					UserID: uuid.NewString(),
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    Issuer,
					},
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
