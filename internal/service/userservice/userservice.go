package userservice

import (
	"context"
	"errors"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/pg"
	"github.com/dmoralesf/clinicore/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=userservice_mock.go -package=userservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByRoles(ctx context.Context, roles []domain.Role, includeInactive bool) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id int, active bool) error
}

type BalanceService interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type Service struct {
	userRepo       Repo
	balanceService BalanceService
	hashService    auth.HashServiceInterface
	txManager      pg.TXManager
}

func New(repo Repo, balanceService BalanceService, hashService auth.HashServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       repo,
		balanceService: balanceService,
		hashService:    hashService,
		txManager:      txManager,
	}
}

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role for this operation")
)

var (
	patientRoles = []domain.Role{domain.RolePatient, domain.RolePrivilegedPatient}
	doctorRoles  = []domain.Role{domain.RoleCardiologist, domain.RolePulmonologist}
)

// RegisterPatient creates a patient account together with its zero balance.
// Both inserts run in one transaction, so the purchase flow never meets a
// registered patient without a saldos row and a failed registration leaves
// no user behind.
func (s *Service) RegisterPatient(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if !user.Role.IsPatient() {
		user.Role = domain.RolePatient
	}

	var newUser *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.register(ctx, user, password)
		if err != nil {
			return err
		}
		if _, err := s.balanceService.CreateBalance(ctx, created.ID); err != nil {
			zap.L().Error("can't create balance: ", zap.Error(err))
			return err
		}
		newUser = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("patient registered", zap.String("email", user.Email))
	return newUser, nil
}

func (s *Service) RegisterDoctor(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if !user.Role.IsDoctor() {
		user.Role = domain.RoleCardiologist
	}
	newUser, err := s.register(ctx, user, password)
	if err != nil {
		return nil, err
	}
	zap.L().Info("doctor registered", zap.String("email", user.Email))
	return newUser, nil
}

func (s *Service) register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hashedPassword
	user.Active = true

	return s.userRepo.Create(ctx, user)
}

// ListPatients returns patients, optionally including deactivated ones or
// narrowed to a single patient role.
func (s *Service) ListPatients(ctx context.Context, includeInactive bool, role *domain.Role) ([]domain.User, error) {
	roles := patientRoles
	if role != nil {
		if !role.IsPatient() {
			return nil, ErrInvalidRole
		}
		roles = []domain.Role{*role}
	}
	return s.userRepo.FindByRoles(ctx, roles, includeInactive)
}

func (s *Service) ListDoctors(ctx context.Context, includeInactive bool) ([]domain.User, error) {
	return s.userRepo.FindByRoles(ctx, doctorRoles, includeInactive)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update rewrites a user's profile. A non-empty newPassword replaces the
// stored hash; email changes are checked for conflicts first.
func (s *Service) Update(ctx context.Context, user *domain.User, newPassword string) error {
	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if user.Email != existing.Email {
		conflict, err := s.userRepo.FindByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if conflict != nil {
			return ErrEmailTaken
		}
	}

	user.PasswordHash = ""
	if newPassword != "" {
		hashed, err := s.hashService.HashPassword(newPassword)
		if err != nil {
			zap.L().Error("can't hash password: ", zap.Error(err))
			return err
		}
		user.PasswordHash = hashed
	}

	return s.userRepo.Update(ctx, user)
}

// ToggleActive flips the active flag and reports the new state.
func (s *Service) ToggleActive(ctx context.Context, id int) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}

	newState := !user.Active
	if err := s.userRepo.SetActive(ctx, id, newState); err != nil {
		zap.L().Error("can't toggle user status", zap.Error(err))
		return false, err
	}
	zap.L().Info("user status changed", zap.Int("user_id", id), zap.Bool("active", newState))
	return newState, nil
}
