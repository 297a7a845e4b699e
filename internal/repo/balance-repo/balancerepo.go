package balancerepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, id_usuario, saldo
        FROM saldos
        WHERE id_usuario = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Create(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        INSERT INTO saldos (id_usuario, saldo)
        VALUES ($1, $2)
        RETURNING id, id_usuario, saldo
    `
	row := r.db.QueryRow(ctx, query, userID, amount)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Amount)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Add credits amount to the user's balance, creating the row on first
// grant. The increment happens database-side so concurrent grants never
// lose updates.
func (r *Repository) Add(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        INSERT INTO saldos (id_usuario, saldo)
        VALUES ($1, $2)
        ON CONFLICT (id_usuario)
        DO UPDATE SET saldo = saldos.saldo + EXCLUDED.saldo
        RETURNING id, id_usuario, saldo
    `
	row := r.db.QueryRow(ctx, query, userID, amount)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Amount)
	if err != nil {
		zap.L().Error("failed to add balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Subtract debits amount only when the stored balance covers it, in one
// conditional update. Returns nil when the row is missing or the funds are
// insufficient; callers decide which of the two it was.
func (r *Repository) Subtract(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE saldos
        SET saldo = saldo - $1
        WHERE id_usuario = $2 AND saldo >= $1
        RETURNING id, id_usuario, saldo
    `
	row := r.db.QueryRow(ctx, query, amount, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to subtract balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// ListPatientBalances reports every patient with their balance; patients
// without a saldos row show up with a zero amount.
func (r *Repository) ListPatientBalances(ctx context.Context) ([]domain.PatientBalance, error) {
	query := `
        SELECT u.id, u.prinombre, u.apepat, u.rol, u.activo, COALESCE(s.saldo, 0) AS saldo
        FROM usuarios u
        LEFT JOIN saldos s ON u.id = s.id_usuario
        WHERE u.rol IN ('patient', 'privileged')
        ORDER BY u.prinombre
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list patient balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.PatientBalance
	for rows.Next() {
		var pb domain.PatientBalance
		err := rows.Scan(&pb.UserID, &pb.FirstName, &pb.LastName, &pb.Role, &pb.Active, &pb.Amount)
		if err != nil {
			zap.L().Error("failed to scan patient balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, pb)
	}
	return balances, rows.Err()
}
