package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashService(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name      string
		password  string
		attempt   string
		wantErr   error
		wantMatch bool
	}{
		{
			name:      "Same password matches",
			password:  "password123",
			attempt:   "password123",
			wantMatch: true,
		},
		{
			name:     "Different password does not match",
			password: "password123",
			attempt:  "password124",
		},
		{
			name:     "Case matters",
			password: "Password123",
			attempt:  "password123",
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "Longer than bcrypt accepts",
			password: strings.Repeat("x", 73),
			wantErr:  bcrypt.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashed)
			assert.Equal(t, tt.wantMatch, hashService.ComparePassword(hashed, tt.attempt))
		})
	}
}

func TestHashService_SaltedHashes(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	first, err := hashService.HashPassword("password123")
	require.NoError(t, err)
	second, err := hashService.HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.False(t, hashService.ComparePassword("not-a-hash", "password123"))
}

func TestNewHashService_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHashService(bcrypt.MinCost).cost)
}
