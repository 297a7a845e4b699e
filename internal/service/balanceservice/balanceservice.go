package balanceservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dmoralesf/clinicore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=balanceservice_mock.go -package=balanceservice

type BalanceRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Balance, error)
	Create(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
	Add(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
	Subtract(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
	ListPatientBalances(ctx context.Context) ([]domain.PatientBalance, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	balanceRepo BalanceRepo
	userRepo    UserRepo
}

func New(balanceRepo BalanceRepo, userRepo UserRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		userRepo:    userRepo,
	}
}

var (
	ErrNotAdmin   = errors.New("user is not an administrator")
	ErrNotPatient = errors.New("user is not a patient")
	ErrInactive   = errors.New("user is inactive")
)

func (s *Service) ListBalances(ctx context.Context) ([]domain.PatientBalance, error) {
	balances, err := s.balanceRepo.ListPatientBalances(ctx)
	if err != nil {
		zap.L().Error("failed to list balances", zap.Error(err))
		return nil, err
	}
	return balances, nil
}

// CreateBalance opens a zero balance for a user, used at registration time.
func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.Create(ctx, userID, decimal.Zero)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetAdminBalance returns the admin's balance, creating the row at zero on
// first read.
func (s *Service) GetAdminBalance(ctx context.Context, adminID int) (*domain.Balance, error) {
	if err := s.requireRole(ctx, adminID, roleAdmin); err != nil {
		return nil, err
	}
	return s.getOrCreate(ctx, adminID)
}

// GetPatientBalance returns the patient's balance, creating the row at zero
// on first read. Inactive patients can still read their balance.
func (s *Service) GetPatientBalance(ctx context.Context, patientID int) (*domain.Balance, error) {
	if err := s.requireRole(ctx, patientID, rolePatient); err != nil {
		return nil, err
	}
	return s.getOrCreate(ctx, patientID)
}

// GrantToPatient credits a patient's balance, admin path. The row is
// created on first grant.
func (s *Service) GrantToPatient(ctx context.Context, patientID int, amount decimal.Decimal) (*domain.Balance, error) {
	balance, err := s.balanceRepo.Add(ctx, patientID, amount)
	if err != nil {
		zap.L().Error("failed to grant balance", zap.Error(err))
		return nil, err
	}
	zap.L().Info("balance granted", zap.Int("user_id", patientID), zap.String("amount", amount.String()))
	return balance, nil
}

func (s *Service) AdminAdd(ctx context.Context, adminID int, amount decimal.Decimal) (*domain.Balance, error) {
	if err := s.requireRole(ctx, adminID, roleAdmin); err != nil {
		return nil, err
	}
	balance, err := s.balanceRepo.Add(ctx, adminID, amount)
	if err != nil {
		zap.L().Error("failed to add admin balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// AdminSubtract debits the admin balance. The row must already exist and
// cover the amount; the decrement itself is conditional, so a concurrent
// debit can't push the balance negative.
func (s *Service) AdminSubtract(ctx context.Context, adminID int, amount decimal.Decimal) (*domain.Balance, error) {
	if err := s.requireRole(ctx, adminID, roleAdmin); err != nil {
		return nil, err
	}
	existing, err := s.balanceRepo.GetByUserID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrBalanceNotFound
	}
	balance, err := s.balanceRepo.Subtract(ctx, adminID, amount)
	if err != nil {
		zap.L().Error("failed to subtract admin balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrInsufficientBalance
	}
	return balance, nil
}

// SelfTopUp credits a patient's own balance. Only active patients may
// top up.
func (s *Service) SelfTopUp(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Role.IsPatient() {
		return nil, ErrNotPatient
	}
	if !user.Active {
		return nil, ErrInactive
	}
	balance, err := s.balanceRepo.Add(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to top up balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

type roleClass int

const (
	roleAdmin roleClass = iota
	rolePatient
)

func (s *Service) requireRole(ctx context.Context, userID int, class roleClass) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	switch class {
	case roleAdmin:
		if user == nil || user.Role != domain.RoleAdmin {
			return ErrNotAdmin
		}
	case rolePatient:
		if user == nil || !user.Role.IsPatient() {
			return ErrNotPatient
		}
	}
	return nil
}

func (s *Service) getOrCreate(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return s.CreateBalance(ctx, userID)
	}
	return balance, nil
}
