package assignmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
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

func intPtr(v int) *int { return &v }

func TestRepository_GetByPatientID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, id_paciente, id_doctor1, id_doctor2
        FROM asignaciones
        WHERE id_paciente = $1
    `)

	tests := []struct {
		name      string
		patientID int
		mockSetup func()
		expectErr bool
		result    *domain.Assignment
	}{
		{
			name:      "Row with one free slot",
			patientID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_paciente", "id_doctor1", "id_doctor2"}).
					AddRow(12, 1, intPtr(3), (*int)(nil))
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Assignment{ID: 12, PatientID: 1, Doctor1ID: intPtr(3)},
		},
		{
			name:      "No assignment row returns nil",
			patientID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			patientID: 1,
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
			result, err := repo.GetByPatientID(context.Background(), tt.patientID)

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

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT EXISTS (
            SELECT 1 FROM asignaciones
            WHERE id_paciente = $1 AND (id_doctor1 = $2 OR id_doctor2 = $2)
        )
    `)

	mock.ExpectQuery(query).WithArgs(1, 3).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(query).WithArgs(1, 4).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.Exists(context.Background(), 1, 4)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO asignaciones (id_paciente, id_doctor1)
        VALUES ($1, $2)
        RETURNING id
    `)

	mock.ExpectQuery(query).WithArgs(1, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))

	id, err := repo.Create(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestRepository_SetSlot(t *testing.T) {
	repo, mock := NewMock(t)

	slot1 := regexp.QuoteMeta(`UPDATE asignaciones SET id_doctor1 = $1 WHERE id = $2`)
	slot2 := regexp.QuoteMeta(`UPDATE asignaciones SET id_doctor2 = $1 WHERE id = $2`)

	tests := []struct {
		name          string
		slot          int
		doctorID      *int
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "Second slot filled",
			slot:     2,
			doctorID: intPtr(4),
			mockSetup: func() {
				mock.ExpectExec(slot2).WithArgs(intPtr(4), 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:     "First slot freed",
			slot:     1,
			doctorID: nil,
			mockSetup: func() {
				mock.ExpectExec(slot1).WithArgs((*int)(nil), 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:     "No row matched",
			slot:     1,
			doctorID: intPtr(4),
			mockSetup: func() {
				mock.ExpectExec(slot1).WithArgs(intPtr(4), 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedError: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetSlot(context.Background(), 12, tt.slot, tt.doctorID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_DeleteIfEmpty(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        DELETE FROM asignaciones
        WHERE id = $1 AND id_doctor1 IS NULL AND id_doctor2 IS NULL
    `)

	mock.ExpectExec(query).WithArgs(12).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.DeleteIfEmpty(context.Background(), 12)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(query).WithArgs(13).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err = repo.DeleteIfEmpty(context.Background(), 13)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_DoctorsForPatient(t *testing.T) {
	repo, mock := NewMock(t)

	assignmentQuery := regexp.QuoteMeta(`
        SELECT id, id_paciente, id_doctor1, id_doctor2
        FROM asignaciones
        WHERE id_paciente = $1
    `)
	doctorsQuery := regexp.QuoteMeta(`
        SELECT id, prinombre, apepat, rol
        FROM usuarios
        WHERE id = ANY($1)
    `)

	tests := []struct {
		name           string
		mockSetup      func()
		expectDoctors  int
		expectNilAssig bool
	}{
		{
			name: "Both slots resolved to doctors",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_paciente", "id_doctor1", "id_doctor2"}).
					AddRow(12, 1, intPtr(3), intPtr(4))
				mock.ExpectQuery(assignmentQuery).WithArgs(1).WillReturnRows(rows)
				doctorRows := pgxmock.NewRows([]string{"id", "prinombre", "apepat", "rol"}).
					AddRow(3, "Maria", "Reyes", domain.RoleCardiologist).
					AddRow(4, "Jorge", "Ruiz", domain.RolePulmonologist)
				mock.ExpectQuery(doctorsQuery).WithArgs([]int{3, 4}).WillReturnRows(doctorRows)
			},
			expectDoctors: 2,
		},
		{
			name: "Empty slots skip the user lookup",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "id_paciente", "id_doctor1", "id_doctor2"}).
					AddRow(12, 1, (*int)(nil), (*int)(nil))
				mock.ExpectQuery(assignmentQuery).WithArgs(1).WillReturnRows(rows)
			},
			expectDoctors: 0,
		},
		{
			name: "No assignment row",
			mockSetup: func() {
				mock.ExpectQuery(assignmentQuery).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			expectNilAssig: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			assignment, doctors, err := repo.DoctorsForPatient(context.Background(), 1)
			assert.NoError(t, err)

			if tt.expectNilAssig {
				assert.Nil(t, assignment)
			} else {
				assert.NotNil(t, assignment)
			}
			assert.Len(t, doctors, tt.expectDoctors)
		})
	}
}

func TestRepository_PatientsForDoctor(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT u.id, u.prinombre, u.apepat, u.rol, u.activo, a.id
        FROM usuarios u
        JOIN asignaciones a ON u.id = a.id_paciente
        WHERE a.id_doctor1 = $1 OR a.id_doctor2 = $1
        ORDER BY u.prinombre
    `)

	rows := pgxmock.NewRows([]string{"id", "prinombre", "apepat", "rol", "activo", "a.id"}).
		AddRow(1, "Ana", "Lopez", domain.RolePatient, true, 12)
	mock.ExpectQuery(query).WithArgs(3).WillReturnRows(rows)

	patients, err := repo.PatientsForDoctor(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []domain.AssignedPatient{
		{UserID: 1, FirstName: "Ana", LastName: "Lopez", Role: domain.RolePatient, Active: true, AssignmentID: 12},
	}, patients)
}
