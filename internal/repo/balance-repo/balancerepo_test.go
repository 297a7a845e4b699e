package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmoralesf/clinicore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, id_usuario, saldo
        FROM saldos
        WHERE id_usuario = $1
    `)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:   "Existing row returns balance",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_usuario", "saldo"}).
					AddRow(1, 1, decimal.NewFromInt(100))
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Balance{ID: 1, UserID: 1, Amount: decimal.NewFromInt(100)},
		},
		{
			name:   "Missing row returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO saldos (id_usuario, saldo)
        VALUES ($1, $2)
        RETURNING id, id_usuario, saldo
    `)

	rows := pgxmock.NewRows([]string{"id", "id_usuario", "saldo"}).
		AddRow(5, 1, decimal.Zero)
	mock.ExpectQuery(query).WithArgs(1, decimal.Zero).WillReturnRows(rows)

	balance, err := repo.Create(context.Background(), 1, decimal.Zero)
	assert.NoError(t, err)
	assert.Equal(t, 5, balance.ID)
	assert.Equal(t, 1, balance.UserID)
	assert.True(t, balance.Amount.IsZero())
}

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO saldos (id_usuario, saldo)
        VALUES ($1, $2)
        ON CONFLICT (id_usuario)
        DO UPDATE SET saldo = saldos.saldo + EXCLUDED.saldo
        RETURNING id, id_usuario, saldo
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  decimal.Decimal
	}{
		{
			name: "Existing balance accumulates",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_usuario", "saldo"}).
					AddRow(1, 1, decimal.NewFromInt(150))
				mock.ExpectQuery(query).WithArgs(1, decimal.NewFromInt(50)).WillReturnRows(rows)
			},
			expected: decimal.NewFromInt(150),
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, decimal.NewFromInt(50)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.Add(context.Background(), 1, decimal.NewFromInt(50))

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expected.Equal(balance.Amount))
			}
		})
	}
}

func TestRepository_Subtract(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE saldos
        SET saldo = saldo - $1
        WHERE id_usuario = $2 AND saldo >= $1
        RETURNING id, id_usuario, saldo
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name: "Covered debit returns new balance",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_usuario", "saldo"}).
					AddRow(1, 1, decimal.NewFromInt(60))
				mock.ExpectQuery(query).WithArgs(decimal.NewFromInt(40), 1).WillReturnRows(rows)
			},
			result: &domain.Balance{ID: 1, UserID: 1, Amount: decimal.NewFromInt(60)},
		},
		{
			name: "Missing row or insufficient funds returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(decimal.NewFromInt(40), 1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(decimal.NewFromInt(40), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Subtract(context.Background(), 1, decimal.NewFromInt(40))

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListPatientBalances(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT u.id, u.prinombre, u.apepat, u.rol, u.activo, COALESCE(s.saldo, 0) AS saldo
        FROM usuarios u
        LEFT JOIN saldos s ON u.id = s.id_usuario
        WHERE u.rol IN ('patient', 'privileged')
        ORDER BY u.prinombre
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.PatientBalance
	}{
		{
			name: "Patients without a saldos row report zero",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "prinombre", "apepat", "rol", "activo", "saldo"}).
					AddRow(1, "Ana", "Lopez", domain.RolePatient, true, decimal.NewFromInt(100)).
					AddRow(2, "Luis", "Mora", domain.RolePrivilegedPatient, false, decimal.Zero)
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			expected: []domain.PatientBalance{
				{UserID: 1, FirstName: "Ana", LastName: "Lopez", Role: domain.RolePatient, Active: true, Amount: decimal.NewFromInt(100)},
				{UserID: 2, FirstName: "Luis", LastName: "Mora", Role: domain.RolePrivilegedPatient, Active: false, Amount: decimal.Zero},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListPatientBalances(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
