package assignmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetByPatientID(ctx context.Context, patientID int) (*domain.Assignment, error) {
	query := `
        SELECT id, id_paciente, id_doctor1, id_doctor2
        FROM asignaciones
        WHERE id_paciente = $1
    `
	var a domain.Assignment
	err := r.db.QueryRow(ctx, query, patientID).Scan(&a.ID, &a.PatientID, &a.Doctor1ID, &a.Doctor2ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get assignment", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Assignment, error) {
	query := `
        SELECT id, id_paciente, id_doctor1, id_doctor2
        FROM asignaciones
        WHERE id = $1
    `
	var a domain.Assignment
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.PatientID, &a.Doctor1ID, &a.Doctor2ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get assignment by id", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Exists(ctx context.Context, patientID, doctorID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM asignaciones
            WHERE id_paciente = $1 AND (id_doctor1 = $2 OR id_doctor2 = $2)
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, patientID, doctorID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check assignment", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, patientID, doctorID int) (int, error) {
	query := `
        INSERT INTO asignaciones (id_paciente, id_doctor1)
        VALUES ($1, $2)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, patientID, doctorID).Scan(&id)
	if err != nil {
		zap.L().Error("can't create assignment", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// SetSlot writes a doctor id (or nil to free the slot) into slot 1 or 2.
func (r *Repository) SetSlot(ctx context.Context, assignmentID, slot int, doctorID *int) error {
	query := `UPDATE asignaciones SET id_doctor1 = $1 WHERE id = $2`
	if slot == 2 {
		query = `UPDATE asignaciones SET id_doctor2 = $1 WHERE id = $2`
	}
	tag, err := r.db.Exec(ctx, query, doctorID, assignmentID)
	if err != nil {
		zap.L().Error("can't update assignment slot", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteIfEmpty removes the row once both slots are null.
func (r *Repository) DeleteIfEmpty(ctx context.Context, assignmentID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        DELETE FROM asignaciones
        WHERE id = $1 AND id_doctor1 IS NULL AND id_doctor2 IS NULL
    `, assignmentID)
	if err != nil {
		zap.L().Error("can't delete empty assignment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DoctorsForPatient(ctx context.Context, patientID int) (*domain.Assignment, []domain.User, error) {
	assignment, err := r.GetByPatientID(ctx, patientID)
	if err != nil || assignment == nil {
		return nil, nil, err
	}

	query := `
        SELECT id, prinombre, apepat, rol
        FROM usuarios
        WHERE id = ANY($1)
    `
	ids := make([]int, 0, 2)
	if assignment.Doctor1ID != nil {
		ids = append(ids, *assignment.Doctor1ID)
	}
	if assignment.Doctor2ID != nil {
		ids = append(ids, *assignment.Doctor2ID)
	}
	if len(ids) == 0 {
		return assignment, nil, nil
	}

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't load assigned doctors", zap.Error(err))
		return nil, nil, err
	}
	defer rows.Close()

	var doctors []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Role); err != nil {
			zap.L().Error("can't scan assigned doctor row", zap.Error(err))
			return nil, nil, err
		}
		doctors = append(doctors, u)
	}
	return assignment, doctors, rows.Err()
}

func (r *Repository) PatientsForDoctor(ctx context.Context, doctorID int) ([]domain.AssignedPatient, error) {
	query := `
        SELECT u.id, u.prinombre, u.apepat, u.rol, u.activo, a.id
        FROM usuarios u
        JOIN asignaciones a ON u.id = a.id_paciente
        WHERE a.id_doctor1 = $1 OR a.id_doctor2 = $1
        ORDER BY u.prinombre
    `
	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		zap.L().Error("can't load doctor patients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var patients []domain.AssignedPatient
	for rows.Next() {
		var p domain.AssignedPatient
		err := rows.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Role, &p.Active, &p.AssignmentID)
		if err != nil {
			zap.L().Error("can't scan doctor patient row", zap.Error(err))
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}
