package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/pg"
	"github.com/dmoralesf/clinicore/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBalanceService) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	balanceService := NewMockBalanceService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(repo, balanceService, &auth.HashService{}, txManager)
	defer ctrl.Finish()
	return service, repo, balanceService
}

func TestRegisterPatient(t *testing.T) {
	service, repo, balanceService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Patient registered with zero balance",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RolePatient, user.Role)
						assert.True(t, user.Active)
						assert.NotEmpty(t, user.PasswordHash)
						assert.NotEqual(t, "secret-password", user.PasswordHash)
						user.ID = 1
						return user, nil
					})
				balanceService.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
			},
		},
		{
			name: "Duplicate email rejected",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Balance creation failure surfaces",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
				balanceService.EXPECT().CreateBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user := &domain.User{Email: "ana@example.com", FirstName: "Ana"}
			created, err := service.RegisterPatient(context.Background(), user, "secret-password")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
			}
		})
	}
}

func TestRegisterPatientTransactional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	balanceService := NewMockBalanceService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, balanceService, &auth.HashService{}, txManager)

	inTx := false
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx)
		})
	repo.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.True(t, inTx, "user insert must run inside the transaction")
			user.ID = 1
			return user, nil
		})
	balanceService.EXPECT().CreateBalance(gomock.Any(), 1).DoAndReturn(
		func(context.Context, int) (*domain.Balance, error) {
			assert.True(t, inTx, "balance insert must run inside the transaction")
			return nil, errors.New("db error")
		})

	user := &domain.User{Email: "ana@example.com", FirstName: "Ana"}
	created, err := service.RegisterPatient(context.Background(), user, "secret-password")
	assert.Nil(t, created, "a failed balance insert must abort the whole registration")
	assert.EqualError(t, err, "db error")
}

func TestRegisterDoctor(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "jorge@example.com").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RolePulmonologist, user.Role)
			user.ID = 3
			return user, nil
		})

	user := &domain.User{Email: "jorge@example.com", FirstName: "Jorge", Role: domain.RolePulmonologist}
	created, err := service.RegisterDoctor(context.Background(), user, "secret-password")
	assert.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestListPatients(t *testing.T) {
	service, repo, _ := NewMock(t)

	patients := []domain.User{{ID: 1, Role: domain.RolePatient}}
	privileged := domain.RolePrivilegedPatient
	doctorRole := domain.RoleCardiologist

	tests := []struct {
		name            string
		includeInactive bool
		role            *domain.Role
		prepareMock     func()
		expected        []domain.User
		expectedError   error
	}{
		{
			name: "Both patient roles by default",
			prepareMock: func() {
				repo.EXPECT().FindByRoles(gomock.Any(),
					[]domain.Role{domain.RolePatient, domain.RolePrivilegedPatient}, false).
					Return(patients, nil)
			},
			expected: patients,
		},
		{
			name: "Narrowed to privileged",
			role: &privileged,
			prepareMock: func() {
				repo.EXPECT().FindByRoles(gomock.Any(), []domain.Role{domain.RolePrivilegedPatient}, false).
					Return(nil, nil)
			},
		},
		{
			name:          "Doctor role rejected as filter",
			role:          &doctorRole,
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.ListPatients(context.Background(), tt.includeInactive, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo, _ := NewMock(t)

	existing := &domain.User{ID: 1, Email: "ana@example.com", Role: domain.RolePatient, Active: true}

	tests := []struct {
		name          string
		user          *domain.User
		newPassword   string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Same email updates without conflict check",
			user: &domain.User{ID: 1, Email: "ana@example.com", FirstName: "Ana"},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) error {
						assert.Empty(t, user.PasswordHash)
						return nil
					})
			},
		},
		{
			name:        "New password rehashed",
			user:        &domain.User{ID: 1, Email: "ana@example.com", FirstName: "Ana"},
			newPassword: "new-password",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) error {
						assert.NotEmpty(t, user.PasswordHash)
						assert.NotEqual(t, "new-password", user.PasswordHash)
						return nil
					})
			},
		},
		{
			name: "Email change to taken address",
			user: &domain.User{ID: 1, Email: "other@example.com"},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing, nil)
				repo.EXPECT().FindByEmail(gomock.Any(), "other@example.com").Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Unknown user",
			user: &domain.User{ID: 99, Email: "x@example.com"},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Update(context.Background(), tt.user, tt.newPassword)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToggleActive(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      bool
		expectedError error
	}{
		{
			name: "Active user deactivated",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Active: true}, nil)
				repo.EXPECT().SetActive(gomock.Any(), 1, false).Return(nil)
			},
			expected: false,
		},
		{
			name: "Inactive user reactivated",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Active: false}, nil)
				repo.EXPECT().SetActive(gomock.Any(), 1, true).Return(nil)
			},
			expected: true,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			active, err := service.ToggleActive(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, active)
			}
		})
	}
}
