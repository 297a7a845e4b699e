package messagerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var messageColumnNames = []string{
	"id", "asignacion_id", "emisor_id", "receptor_id", "mensaje", "leido", "fecha_envio",
}

func TestRepository_Conversation(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT ` + messageColumns + `
        FROM mensajes
        WHERE (emisor_id = $1 AND receptor_id = $2)
           OR (emisor_id = $2 AND receptor_id = $1)
        ORDER BY fecha_envio ASC
    `)
	sentAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.Message
	}{
		{
			name: "Both directions in send order",
			mockSetup: func() {
				rows := pgxmock.NewRows(messageColumnNames).
					AddRow(1, 12, 2, 1, "Buenos dias", true, sentAt).
					AddRow(2, 12, 1, 2, "Hola doctor", false, sentAt.Add(time.Minute))
				mock.ExpectQuery(query).WithArgs(1, 2).WillReturnRows(rows)
			},
			expected: []domain.Message{
				{ID: 1, AssignmentID: 12, SenderID: 2, ReceiverID: 1, Text: "Buenos dias", Read: true, SentAt: sentAt},
				{ID: 2, AssignmentID: 12, SenderID: 1, ReceiverID: 2, Text: "Hola doctor", Read: false, SentAt: sentAt.Add(time.Minute)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			messages, err := repo.Conversation(context.Background(), 1, 2)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, messages)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, messages)
			}
		})
	}
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE mensajes
        SET leido = TRUE
        WHERE emisor_id = $1 AND receptor_id = $2 AND leido = FALSE
    `)

	mock.ExpectExec(query).WithArgs(2, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	err := repo.MarkRead(context.Background(), 2, 1)
	assert.NoError(t, err)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO mensajes (asignacion_id, emisor_id, receptor_id, mensaje)
        VALUES ($1, $2, $3, $4)
        RETURNING id, leido, fecha_envio
    `)
	sentAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(query).WithArgs(12, 1, 2, "Hola doctor").
		WillReturnRows(pgxmock.NewRows([]string{"id", "leido", "fecha_envio"}).
			AddRow(7, false, sentAt))

	msg, err := repo.Create(context.Background(), &domain.Message{
		AssignmentID: 12, SenderID: 1, ReceiverID: 2, Text: "Hola doctor",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, msg.ID)
	assert.False(t, msg.Read)
	assert.Equal(t, sentAt, msg.SentAt)
}

func TestRepository_LastMessage(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT ` + messageColumns + `
        FROM mensajes
        WHERE (emisor_id = $1 AND receptor_id = $2)
           OR (emisor_id = $2 AND receptor_id = $1)
        ORDER BY fecha_envio DESC
        LIMIT 1
    `)
	sentAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	rows := pgxmock.NewRows(messageColumnNames).
		AddRow(3, 12, 2, 1, "Nos vemos", false, sentAt)
	mock.ExpectQuery(query).WithArgs(1, 2).WillReturnRows(rows)

	msg, err := repo.LastMessage(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Nos vemos", msg.Text)

	mock.ExpectQuery(query).WithArgs(1, 4).WillReturnError(pgx.ErrNoRows)

	msg, err = repo.LastMessage(context.Background(), 1, 4)
	assert.NoError(t, err)
	assert.Nil(t, msg)
}

func TestRepository_UnreadCount(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT COUNT(*)
        FROM mensajes
        WHERE emisor_id = $1 AND receptor_id = $2 AND leido = FALSE
    `)

	mock.ExpectQuery(query).WithArgs(2, 1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_Contacts(t *testing.T) {
	repo, mock := NewMock(t)

	patientQuery := regexp.QuoteMeta(`
        SELECT u.id, u.prinombre, u.apepat, u.rol, a.id
        FROM usuarios u
        JOIN asignaciones a ON (u.id = a.id_doctor1 OR u.id = a.id_doctor2)
        WHERE a.id_paciente = $1
    `)
	doctorQuery := regexp.QuoteMeta(`
        SELECT u.id, u.prinombre, u.apepat, u.rol, a.id
        FROM usuarios u
        JOIN asignaciones a ON u.id = a.id_paciente
        WHERE a.id_doctor1 = $1 OR a.id_doctor2 = $1
    `)

	contactColumns := []string{"id", "prinombre", "apepat", "rol", "a.id"}

	mock.ExpectQuery(patientQuery).WithArgs(1).
		WillReturnRows(pgxmock.NewRows(contactColumns).
			AddRow(3, "Maria", "Reyes", domain.RoleCardiologist, 12))

	contacts, err := repo.ContactsForPatient(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Contact{
		{UserID: 3, FirstName: "Maria", LastName: "Reyes", Role: domain.RoleCardiologist, AssignmentID: 12},
	}, contacts)

	mock.ExpectQuery(doctorQuery).WithArgs(3).
		WillReturnRows(pgxmock.NewRows(contactColumns).
			AddRow(1, "Ana", "Lopez", domain.RolePatient, 12))

	contacts, err = repo.ContactsForDoctor(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Contact{
		{UserID: 1, FirstName: "Ana", LastName: "Lopez", Role: domain.RolePatient, AssignmentID: 12},
	}, contacts)
}
