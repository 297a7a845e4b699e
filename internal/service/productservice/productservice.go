package productservice

import (
	"context"
	"errors"
	"strings"

	"github.com/dmoralesf/clinicore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=productservice.go -destination=productservice_mock.go -package=productservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SetStatus(ctx context.Context, id, status int) error
}

type Service struct {
	productRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		productRepo: repo,
	}
}

var (
	ErrNameTaken       = errors.New("product name already in use")
	ErrProductNotFound = errors.New("product not found")
)

const imagePathPrefix = "images/productos/"

func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	return s.productRepo.FindAll(ctx, includeInactive)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.productRepo.FindByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	product.Image = normalizeImagePath(product.Image)
	product.Status = domain.ProductActive

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	zap.L().Info("product created", zap.Int("product_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, product *domain.Product) error {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if product.Name != existing.Name {
		conflict, err := s.productRepo.FindByName(ctx, product.Name)
		if err != nil {
			return err
		}
		if conflict != nil {
			return ErrNameTaken
		}
	}

	if product.Image == "" {
		product.Image = existing.Image
	} else {
		product.Image = normalizeImagePath(product.Image)
	}
	product.Status = existing.Status

	return s.productRepo.Update(ctx, product)
}

// ToggleStatus flips a product between active and discontinued and reports
// the new status.
func (s *Service) ToggleStatus(ctx context.Context, id int) (int, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}

	newStatus := domain.ProductActive
	if product.Status == domain.ProductActive {
		newStatus = domain.ProductInactive
	}
	if err := s.productRepo.SetStatus(ctx, id, newStatus); err != nil {
		zap.L().Error("can't toggle product status", zap.Error(err))
		return 0, err
	}
	zap.L().Info("product status changed", zap.Int("product_id", id), zap.Int("status", newStatus))
	return newStatus, nil
}

// normalizeImagePath stores images under a fixed catalog directory so the
// frontend can resolve them relative to its static root.
func normalizeImagePath(name string) string {
	if name == "" || strings.HasPrefix(name, imagePathPrefix) {
		return name
	}
	return imagePathPrefix + name
}
