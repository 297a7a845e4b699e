package productrepo

import (
	"context"
	"errors"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const productColumns = `id, nombre, descripcion, precio, stock, imagen, status`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE id = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE nombre = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product by name", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) FindAll(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto`
	if !includeInactive {
		query += ` WHERE status = 1`
	}
	query += ` ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO producto (nombre, descripcion, precio, stock, imagen, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, product.Image, product.Status,
	).Scan(&product.ID)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE producto
		SET nombre = $1, descripcion = $2, precio = $3, stock = $4, imagen = $5, status = $6
		WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, product.Image, product.Status, product.ID,
	)
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id, status int) error {
	tag, err := r.db.Exec(ctx, `UPDATE producto SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		zap.L().Error("can't change product status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
