package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mocks struct {
	repo        *MockRepo
	hash        *auth.MockHashServiceInterface
	jwt         *auth.MockJWTServiceInterface
	revocations *auth.MockRevocationStore
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:        NewMockRepo(ctrl),
		hash:        auth.NewMockHashServiceInterface(ctrl),
		jwt:         auth.NewMockJWTServiceInterface(ctrl),
		revocations: auth.NewMockRevocationStore(ctrl),
	}
	return New(m.repo, m.hash, m.jwt, m.revocations), m
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = userID
					return user, nil
				})
			},
			expectedUser: &domain.User{ID: userID, Login: "testuser", PasswordHash: "hashedpassword"},
		},
		{
			name: "User already exists",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name: "Concurrent registration wins",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
		{
			name: "Error creating user",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert error"))
			},
			expectedError: errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(ctx, "testuser", "testpassword")
			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	stored := &domain.User{ID: uuid.New(), Login: "testuser", PasswordHash: "hashedpassword"}
	dbErr := errors.New("database error")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
		expectedLog   string
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(stored, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
			expectedLog:   "invalid credentials: unknown login",
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(stored, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
			expectedLog:   "invalid credentials: wrong password",
		},
		{
			name: "Repository error is not a credentials failure",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			defer zap.ReplaceGlobals(zap.New(core))()

			tt.prepareMock()
			user, err := service.Authenticate(ctx, "testuser", "testpassword")
			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expectedUser, user)

			if tt.expectedLog == "" {
				assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
				assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
				return
			}
			entries := logs.FilterMessage(tt.expectedLog).AllUntimed()
			require.Len(t, entries, 1)
			assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
			assert.Equal(t, map[string]interface{}{"login": "testuser"}, entries[0].ContextMap())
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	m.jwt.EXPECT().GenerateJWT(userID).Return("token", nil)
	token, err := service.GenerateToken(userID)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	m.jwt.EXPECT().GenerateJWT(userID).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(userID)
	assert.EqualError(t, err, "sign error")
}

func TestGetUser(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	m.repo.EXPECT().FindByID(ctx, userID).Return(&domain.User{ID: userID, Login: "testuser"}, nil)
	user, err := service.GetUser(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", user.Login)

	m.repo.EXPECT().FindByID(ctx, userID).Return(nil, nil)
	_, err = service.GetUser(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	m.repo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("database error"))
	_, err = service.GetUser(ctx, userID)
	assert.EqualError(t, err, "database error")
}

func TestUpdateProfile(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := domain.UserProfile{Email: "a@b.c", FirstName: "Ann"}

	m.repo.EXPECT().UpdateProfile(ctx, userID, profile).Return(&domain.User{ID: userID, Email: "a@b.c", FirstName: "Ann"}, nil)
	user, err := service.UpdateProfile(ctx, userID, profile)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", user.FirstName)

	m.repo.EXPECT().UpdateProfile(ctx, userID, profile).Return(nil, nil)
	_, err = service.UpdateProfile(ctx, userID, profile)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogout(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	claims := &auth.Claims{
		UserID: uuid.NewString(),
		StandardClaims: jwt.StandardClaims{
			Id:        "token-id",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	m.revocations.EXPECT().Revoke(ctx, "token-id", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
		assert.Greater(t, ttl, 59*time.Minute)
		return nil
	})
	assert.NoError(t, service.Logout(ctx, claims))

	m.revocations.EXPECT().Revoke(ctx, "token-id", gomock.Any()).Return(errors.New("redis down"))
	assert.EqualError(t, service.Logout(ctx, claims), "redis down")
}
