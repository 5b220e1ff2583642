package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/GlebRadaev/betledger/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/GlebRadaev/betledger/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), pkgauth.UserIDKey, userID))
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(&domain.User{
					ID:           userID,
					Login:        "newuser",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(userID).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123").Return(nil, authservice.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Password too short",
			body:          `{"login":"newuser","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid registration data",
		},
		{
			name: "Storage failure",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to register user",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(&domain.User{ID: userID}, nil)
				service.EXPECT().GenerateToken(userID).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(&domain.User{ID: userID, Login: "testuser"}, nil)
				service.EXPECT().
					GenerateToken(userID).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Storage failure",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to authenticate user",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing password",
			body:          `{"login":"testuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Login and password are required",
		},
		{
			name: "Error generating token",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(&domain.User{ID: userID}, nil)
				service.EXPECT().
					GenerateToken(userID).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	t.Run("Profile", func(t *testing.T) {
		service.EXPECT().GetUser(gomock.Any(), userID).Return(&domain.User{ID: userID, Login: "punter", Email: "p@example.com"}, nil)

		req := withUser(httptest.NewRequest("GET", "/api/auth/user", nil), userID)
		rr := httptest.NewRecorder()
		handler.GetUser(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "punter", body["login"])
		assert.Equal(t, "p@example.com", body["email"])
		assert.NotContains(t, body, "passwordHash")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.GetUser(rr, httptest.NewRequest("GET", "/api/auth/user", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing user", func(t *testing.T) {
		service.EXPECT().GetUser(gomock.Any(), userID).Return(nil, authservice.ErrUserNotFound)

		rr := httptest.NewRecorder()
		handler.GetUser(rr, withUser(httptest.NewRequest("GET", "/api/auth/user", nil), userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated",
			body: `{"email":"p@example.com","firstName":"Alex"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateProfile(gomock.Any(), userID, domain.UserProfile{Email: "p@example.com", FirstName: "Alex"}).
					Return(&domain.User{ID: userID, Email: "p@example.com", FirstName: "Alex"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad email",
			body:         `{"email":"not-an-email"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"firstName":"Alex"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withUser(httptest.NewRequest("PUT", "/api/auth/user", bytes.NewReader([]byte(tt.body))), userID)
			rr := httptest.NewRecorder()
			handler.UpdateUser(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	claims := &pkgauth.Claims{UserID: uuid.NewString(), StandardClaims: jwt.StandardClaims{Id: "jti"}}

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req = req.WithContext(context.WithValue(req.Context(), pkgauth.ClaimsKey, claims))

	service.EXPECT().Logout(gomock.Any(), claims).Return(nil)
	rr := httptest.NewRecorder()
	handler.Logout(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rr.Body.String())

	service.EXPECT().Logout(gomock.Any(), claims).Return(errors.New("redis down"))
	rr = httptest.NewRecorder()
	handler.Logout(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	handler.Logout(rr, httptest.NewRequest("POST", "/api/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
