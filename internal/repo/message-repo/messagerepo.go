package messagerepo

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

const messageColumns = `id, asignacion_id, emisor_id, receptor_id, mensaje, leido, fecha_envio`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.AssignmentID, &m.SenderID, &m.ReceiverID, &m.Text, &m.Read, &m.SentAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Conversation(ctx context.Context, userID, contactID int) ([]domain.Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM mensajes
        WHERE (emisor_id = $1 AND receptor_id = $2)
           OR (emisor_id = $2 AND receptor_id = $1)
        ORDER BY fecha_envio ASC
    `
	rows, err := r.db.Query(ctx, query, userID, contactID)
	if err != nil {
		zap.L().Error("can't get conversation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			zap.L().Error("can't scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func (r *Repository) MarkRead(ctx context.Context, senderID, receiverID int) error {
	_, err := r.db.Exec(ctx, `
        UPDATE mensajes
        SET leido = TRUE
        WHERE emisor_id = $1 AND receptor_id = $2 AND leido = FALSE
    `, senderID, receiverID)
	if err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	query := `
        INSERT INTO mensajes (asignacion_id, emisor_id, receptor_id, mensaje)
        VALUES ($1, $2, $3, $4)
        RETURNING id, leido, fecha_envio
    `
	err := r.db.QueryRow(ctx, query, msg.AssignmentID, msg.SenderID, msg.ReceiverID, msg.Text).
		Scan(&msg.ID, &msg.Read, &msg.SentAt)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return nil, err
	}
	return msg, nil
}

func (r *Repository) LastMessage(ctx context.Context, userID, contactID int) (*domain.Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM mensajes
        WHERE (emisor_id = $1 AND receptor_id = $2)
           OR (emisor_id = $2 AND receptor_id = $1)
        ORDER BY fecha_envio DESC
        LIMIT 1
    `
	msg, err := scanMessage(r.db.QueryRow(ctx, query, userID, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get last message", zap.Error(err))
		return nil, err
	}
	return msg, nil
}

func (r *Repository) UnreadCount(ctx context.Context, senderID, receiverID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM mensajes
        WHERE emisor_id = $1 AND receptor_id = $2 AND leido = FALSE
    `, senderID, receiverID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unread messages", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ContactsForPatient(ctx context.Context, patientID int) ([]domain.Contact, error) {
	query := `
        SELECT u.id, u.prinombre, u.apepat, u.rol, a.id
        FROM usuarios u
        JOIN asignaciones a ON (u.id = a.id_doctor1 OR u.id = a.id_doctor2)
        WHERE a.id_paciente = $1
    `
	return r.queryContacts(ctx, query, patientID)
}

func (r *Repository) ContactsForDoctor(ctx context.Context, doctorID int) ([]domain.Contact, error) {
	query := `
        SELECT u.id, u.prinombre, u.apepat, u.rol, a.id
        FROM usuarios u
        JOIN asignaciones a ON u.id = a.id_paciente
        WHERE a.id_doctor1 = $1 OR a.id_doctor2 = $1
    `
	return r.queryContacts(ctx, query, doctorID)
}

func (r *Repository) queryContacts(ctx context.Context, query string, userID int) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get contacts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		err := rows.Scan(&c.UserID, &c.FirstName, &c.LastName, &c.Role, &c.AssignmentID)
		if err != nil {
			zap.L().Error("can't scan contact row", zap.Error(err))
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
