package salerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreatePurchase persists one sale atomically: sale header, line item,
// stock decrement and balance debit all commit or all roll back. Stock and
// balance are decremented with conditional updates re-checked inside the
// transaction, so two concurrent purchases of the last unit cannot both
// succeed.
func (r *Repository) CreatePurchase(ctx context.Context, patientID, productID, quantity int, unitPrice decimal.Decimal) (int, decimal.Decimal, error) {
	var saleID int
	var newBalance decimal.Decimal
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, `
			INSERT INTO venta (fecha_pedido, id_paciente)
			VALUES (CURRENT_DATE, $1)
			RETURNING id
		`, patientID).Scan(&saleID)
		if err != nil {
			zap.L().Error("can't create sale", zap.Error(err))
			return err
		}

		_, err = r.db.Exec(ctx, `
			INSERT INTO detalle_venta (id_venta, id_producto, cantidad, precio)
			VALUES ($1, $2, $3, $4)
		`, saleID, productID, quantity, unitPrice)
		if err != nil {
			zap.L().Error("can't create sale detail", zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, `
			UPDATE producto
			SET stock = stock - $1
			WHERE id = $2 AND status = 1 AND stock >= $1
		`, quantity, productID)
		if err != nil {
			zap.L().Error("can't decrement stock", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientStock
		}

		err = r.db.QueryRow(ctx, `
			UPDATE saldos
			SET saldo = saldo - $1
			WHERE id_usuario = $2 AND saldo >= $1
			RETURNING saldo
		`, total, patientID).Scan(&newBalance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrInsufficientBalance
			}
			zap.L().Error("can't debit balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}
	return saleID, newBalance, nil
}

const purchaseColumns = `
		SELECT v.id, v.fecha_pedido, v.id_paciente,
			dv.id_producto, dv.cantidad, dv.precio,
			p.nombre, p.descripcion, p.imagen
		FROM venta v
		JOIN detalle_venta dv ON v.id = dv.id_venta
		JOIN producto p ON dv.id_producto = p.id
`

func scanPurchase(rows pgx.Rows) (*domain.PurchaseRecord, error) {
	var rec domain.PurchaseRecord
	err := rows.Scan(
		&rec.SaleID, &rec.OrderDate, &rec.PatientID,
		&rec.ProductID, &rec.Quantity, &rec.UnitPrice,
		&rec.ProductName, &rec.Description, &rec.Image,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PurchaseRecord, error) {
	query := purchaseColumns + `
		WHERE v.id_paciente = $1
		ORDER BY v.fecha_pedido DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.PurchaseRecord
	for rows.Next() {
		rec, err := scanPurchase(rows)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *Repository) FindBySaleID(ctx context.Context, saleID int) ([]domain.PurchaseRecord, error) {
	query := purchaseColumns + `
		WHERE v.id = $1
	`
	rows, err := r.db.Query(ctx, query, saleID)
	if err != nil {
		zap.L().Error("can't get purchase details", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.PurchaseRecord
	for rows.Next() {
		rec, err := scanPurchase(rows)
		if err != nil {
			zap.L().Error("can't scan purchase detail row", zap.Error(err))
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
