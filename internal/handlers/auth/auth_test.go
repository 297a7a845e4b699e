package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/authservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	user := &domain.User{
		ID: 1, Email: "ana@example.com", Role: domain.RolePatient,
		FirstName: "Ana", LastName: "Lopez", Active: true,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"correo":"ana@example.com","password":"secret-password"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret-password").
					Return(user, nil)
				service.EXPECT().GenerateToken(1, domain.RolePatient).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong credentials",
			body: `{"correo":"ana@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Deactivated account",
			body: `{"correo":"ana@example.com","password":"secret-password"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret-password").
					Return(nil, authservice.ErrUserInactive)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Account is deactivated",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"correo":"ana@example.com","password":"secret-password"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret-password").
					Return(user, nil)
				service.EXPECT().GenerateToken(1, domain.RolePatient).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			var body dto.LoginResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, 1, body.UserID)
			assert.Equal(t, "patient", body.Role)
		})
	}
}
