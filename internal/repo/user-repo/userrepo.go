package userrepo

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

const userColumns = `id, rol, activo, prinombre, segnombre, apepat, apemat, correo, password_hash, fechanac, tel, especialidad, creado_en`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Role, &user.Active,
		&user.FirstName, &user.MiddleName, &user.LastName, &user.SecondLastName,
		&user.Email, &user.PasswordHash, &user.BirthDate, &user.Phone,
		&user.Specialty, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE correo = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByRoles(ctx context.Context, roles []domain.Role, includeInactive bool) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE rol = ANY($1)`
	if !includeInactive {
		query += ` AND activo`
	}
	query += ` ORDER BY prinombre`

	roleNames := make([]string, len(roles))
	for i, r := range roles {
		roleNames[i] = string(r)
	}

	rows, err := repo.db.Query(ctx, query, roleNames)
	if err != nil {
		zap.L().Error("can't list users by role", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO usuarios (rol, activo, prinombre, segnombre, apepat, apemat, correo, password_hash, fechanac, tel, especialidad)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, creado_en
	`
	err := repo.db.QueryRow(ctx, query,
		user.Role, user.Active,
		user.FirstName, user.MiddleName, user.LastName, user.SecondLastName,
		user.Email, user.PasswordHash, user.BirthDate, user.Phone, user.Specialty,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Update rewrites the profile fields; the password hash is only touched
// when the caller set one on the user.
func (repo *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE usuarios
		SET rol = $1, prinombre = $2, segnombre = $3, apepat = $4, apemat = $5,
			correo = $6, fechanac = $7, tel = $8, especialidad = $9
		WHERE id = $10
	`
	args := []any{
		user.Role, user.FirstName, user.MiddleName, user.LastName, user.SecondLastName,
		user.Email, user.BirthDate, user.Phone, user.Specialty, user.ID,
	}
	if user.PasswordHash != "" {
		query = `
		UPDATE usuarios
		SET rol = $1, prinombre = $2, segnombre = $3, apepat = $4, apemat = $5,
			correo = $6, fechanac = $7, tel = $8, especialidad = $9, password_hash = $10
		WHERE id = $11
	`
		args = []any{
			user.Role, user.FirstName, user.MiddleName, user.LastName, user.SecondLastName,
			user.Email, user.BirthDate, user.Phone, user.Specialty, user.PasswordHash, user.ID,
		}
	}

	tag, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (repo *Repository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := repo.db.Exec(ctx, `UPDATE usuarios SET activo = $1 WHERE id = $2`, active, id)
	if err != nil {
		zap.L().Error("can't change user status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
