package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmoralesf/clinicore/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(balanceRepo, userRepo)
	defer ctrl.Finish()
	return service, balanceRepo, userRepo
}

func TestListBalances(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)

	balances := []domain.PatientBalance{
		{UserID: 1, FirstName: "Ana", LastName: "Lopez", Role: domain.RolePatient, Active: true, Amount: decimal.NewFromInt(50)},
		{UserID: 2, FirstName: "Luis", LastName: "Mora", Role: domain.RolePrivilegedPatient, Active: true, Amount: decimal.Zero},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.PatientBalance
		expectedError error
	}{
		{
			name: "Balances listed",
			prepareMock: func() {
				balanceRepo.EXPECT().ListPatientBalances(gomock.Any()).Return(balances, nil)
			},
			expected: balances,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				balanceRepo.EXPECT().ListPatientBalances(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.ListBalances(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestGetAdminBalance(t *testing.T) {
	service, balanceRepo, userRepo := NewMock(t)

	admin := &domain.User{ID: 9, Role: domain.RoleAdmin, Active: true}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Balance
		expectedError error
	}{
		{
			name: "Existing balance returned",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(admin, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 9).Return(&domain.Balance{
					UserID: 9, Amount: decimal.NewFromInt(200),
				}, nil)
			},
			expected: &domain.Balance{UserID: 9, Amount: decimal.NewFromInt(200)},
		},
		{
			name: "Missing row created at zero",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(admin, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 9).Return(nil, nil)
				balanceRepo.EXPECT().Create(gomock.Any(), 9, decimal.Zero).Return(&domain.Balance{
					UserID: 9, Amount: decimal.Zero,
				}, nil)
			},
			expected: &domain.Balance{UserID: 9, Amount: decimal.Zero},
		},
		{
			name: "Non-admin rejected",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(&domain.User{
					ID: 9, Role: domain.RolePatient, Active: true,
				}, nil)
			},
			expectedError: ErrNotAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.GetAdminBalance(context.Background(), 9)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestGetPatientBalance(t *testing.T) {
	service, balanceRepo, userRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Balance
		expectedError error
	}{
		{
			name: "Inactive patient can still read",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{
					ID: 2, Role: domain.RolePatient, Active: false,
				}, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(&domain.Balance{
					UserID: 2, Amount: decimal.NewFromInt(10),
				}, nil)
			},
			expected: &domain.Balance{UserID: 2, Amount: decimal.NewFromInt(10)},
		},
		{
			name: "Doctor rejected",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{
					ID: 2, Role: domain.RolePulmonologist, Active: true,
				}, nil)
			},
			expectedError: ErrNotPatient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.GetPatientBalance(context.Background(), 2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestGrantToPatient(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)

	amount := decimal.NewFromInt(25)
	balanceRepo.EXPECT().Add(gomock.Any(), 1, amount).Return(&domain.Balance{
		UserID: 1, Amount: decimal.NewFromInt(75),
	}, nil)

	balance, err := service.GrantToPatient(context.Background(), 1, amount)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(75).Equal(balance.Amount))
}

func TestAdminSubtract(t *testing.T) {
	service, balanceRepo, userRepo := NewMock(t)

	admin := &domain.User{ID: 9, Role: domain.RoleAdmin, Active: true}
	amount := decimal.NewFromInt(30)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Balance
		expectedError error
	}{
		{
			name: "Successful debit",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(admin, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 9).Return(&domain.Balance{
					UserID: 9, Amount: decimal.NewFromInt(100),
				}, nil)
				balanceRepo.EXPECT().Subtract(gomock.Any(), 9, amount).Return(&domain.Balance{
					UserID: 9, Amount: decimal.NewFromInt(70),
				}, nil)
			},
			expected: &domain.Balance{UserID: 9, Amount: decimal.NewFromInt(70)},
		},
		{
			name: "Missing balance row",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(admin, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: domain.ErrBalanceNotFound,
		},
		{
			name: "Conditional update found insufficient funds",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 9).Return(admin, nil)
				balanceRepo.EXPECT().GetByUserID(gomock.Any(), 9).Return(&domain.Balance{
					UserID: 9, Amount: decimal.NewFromInt(10),
				}, nil)
				balanceRepo.EXPECT().Subtract(gomock.Any(), 9, amount).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.AdminSubtract(context.Background(), 9, amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSelfTopUp(t *testing.T) {
	service, balanceRepo, userRepo := NewMock(t)

	amount := decimal.NewFromInt(40)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Balance
		expectedError error
	}{
		{
			name: "Active patient tops up",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, Role: domain.RolePrivilegedPatient, Active: true,
				}, nil)
				balanceRepo.EXPECT().Add(gomock.Any(), 1, amount).Return(&domain.Balance{
					UserID: 1, Amount: decimal.NewFromInt(90),
				}, nil)
			},
			expected: &domain.Balance{UserID: 1, Amount: decimal.NewFromInt(90)},
		},
		{
			name: "Inactive patient rejected",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, Role: domain.RolePatient, Active: false,
				}, nil)
			},
			expectedError: ErrInactive,
		},
		{
			name: "Admin rejected",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, Role: domain.RoleAdmin, Active: true,
				}, nil)
			},
			expectedError: ErrNotPatient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.SelfTopUp(context.Background(), 1, amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
