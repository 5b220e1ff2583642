package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRevocationStore_Revoke(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisRevocationStore(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		ttl       time.Duration
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Stores token id with ttl",
			ttl:  time.Hour,
			mockSetup: func() {
				mock.ExpectSet("auth:revoked:abc", 1, time.Hour).SetVal("OK")
			},
		},
		{
			name:      "Expired token is skipped",
			ttl:       -time.Second,
			mockSetup: func() {},
		},
		{
			name: "Redis error",
			ttl:  time.Minute,
			mockSetup: func() {
				mock.ExpectSet("auth:revoked:abc", 1, time.Minute).SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := store.Revoke(ctx, "abc", tt.ttl)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisRevocationStore_IsRevoked(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisRevocationStore(db)
	ctx := context.Background()

	mock.ExpectExists("auth:revoked:abc").SetVal(1)
	revoked, err := store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	mock.ExpectExists("auth:revoked:def").SetVal(0)
	revoked, err = store.IsRevoked(ctx, "def")
	require.NoError(t, err)
	assert.False(t, revoked)

	mock.ExpectExists("auth:revoked:ghi").SetErr(errors.New("timeout"))
	_, err = store.IsRevoked(ctx, "ghi")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
