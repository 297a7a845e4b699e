package purchaseservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dmoralesf/clinicore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=purchaseservice.go -destination=purchaseservice_mock.go -package=purchaseservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type BalanceRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Balance, error)
}

type SaleRepo interface {
	CreatePurchase(ctx context.Context, patientID, productID, quantity int, unitPrice decimal.Decimal) (int, decimal.Decimal, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PurchaseRecord, error)
	FindBySaleID(ctx context.Context, saleID int) ([]domain.PurchaseRecord, error)
}

type Service struct {
	userRepo    UserRepo
	productRepo ProductRepo
	balanceRepo BalanceRepo
	saleRepo    SaleRepo
}

func New(userRepo UserRepo, productRepo ProductRepo, balanceRepo BalanceRepo, saleRepo SaleRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		productRepo: productRepo,
		balanceRepo: balanceRepo,
		saleRepo:    saleRepo,
	}
}

var (
	ErrInvalidBuyer       = errors.New("user not allowed to purchase")
	ErrProductUnavailable = errors.New("product not available")
	ErrPurchaseNotFound   = errors.New("purchase not found")
)

// Purchase converts a buy request into a sale. Preconditions are checked in
// order (buyer, product, stock, balance) and each failure aborts with no
// partial effect; the writes happen inside one transaction whose
// conditional updates re-verify stock and balance, so the pre-checks can
// never be raced into an oversell.
func (s *Service) Purchase(ctx context.Context, userID, productID, quantity int, price decimal.Decimal) (int, decimal.Decimal, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if user == nil || !user.Role.IsPatient() || !user.Active {
		return 0, decimal.Zero, ErrInvalidBuyer
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if product == nil || product.Status != domain.ProductActive {
		return 0, decimal.Zero, ErrProductUnavailable
	}
	if product.Stock < quantity {
		return 0, decimal.Zero, domain.ErrInsufficientStock
	}

	balance, err := s.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if balance == nil {
		return 0, decimal.Zero, domain.ErrBalanceNotFound
	}
	total := price.Mul(decimal.NewFromInt(int64(quantity)))
	if balance.Amount.LessThan(total) {
		return 0, decimal.Zero, domain.ErrInsufficientBalance
	}

	saleID, newBalance, err := s.saleRepo.CreatePurchase(ctx, userID, productID, quantity, price)
	if err != nil {
		zap.L().Error("purchase transaction failed", zap.Int("user_id", userID), zap.Error(err))
		return 0, decimal.Zero, err
	}

	zap.L().Info("purchase completed",
		zap.Int("user_id", userID),
		zap.Int("sale_id", saleID),
		zap.String("total", total.String()),
	)
	return saleID, newBalance, nil
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.PurchaseRecord, error) {
	records, err := s.saleRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchase history", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) Details(ctx context.Context, saleID int) ([]domain.PurchaseRecord, error) {
	records, err := s.saleRepo.FindBySaleID(ctx, saleID)
	if err != nil {
		zap.L().Error("failed to fetch purchase details", zap.Error(err))
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrPurchaseNotFound
	}
	return records, nil
}
