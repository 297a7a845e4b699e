package messageservice

import (
	"context"
	"errors"
	"strings"

	"github.com/dmoralesf/clinicore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=messageservice.go -destination=messageservice_mock.go -package=messageservice

type MessageRepo interface {
	Conversation(ctx context.Context, userID, contactID int) ([]domain.Message, error)
	MarkRead(ctx context.Context, senderID, receiverID int) error
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	LastMessage(ctx context.Context, userID, contactID int) (*domain.Message, error)
	UnreadCount(ctx context.Context, senderID, receiverID int) (int, error)
	ContactsForPatient(ctx context.Context, patientID int) ([]domain.Contact, error)
	ContactsForDoctor(ctx context.Context, doctorID int) ([]domain.Contact, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	messageRepo MessageRepo
	userRepo    UserRepo
}

func New(messageRepo MessageRepo, userRepo UserRepo) *Service {
	return &Service{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrUserNotFound = errors.New("user not found")
)

// Conversation returns the full exchange between two users, oldest first,
// and marks the contact's messages to the reader as read.
func (s *Service) Conversation(ctx context.Context, userID, contactID int) ([]domain.Message, error) {
	messages, err := s.messageRepo.Conversation(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.MarkRead(ctx, contactID, userID); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Service) Send(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if strings.TrimSpace(msg.Text) == "" {
		return nil, ErrEmptyMessage
	}
	saved, err := s.messageRepo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}
	zap.L().Info("message sent",
		zap.Int("sender_id", msg.SenderID),
		zap.Int("receiver_id", msg.ReceiverID),
	)
	return saved, nil
}

// Contacts lists a user's chat counterparts: assigned doctors for a patient,
// assigned patients for a doctor. Each entry carries the latest message and
// how many of the contact's messages are still unread.
func (s *Service) Contacts(ctx context.Context, userID int) ([]domain.Contact, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var contacts []domain.Contact
	switch {
	case user.Role.IsPatient():
		contacts, err = s.messageRepo.ContactsForPatient(ctx, userID)
	case user.Role.IsDoctor():
		contacts, err = s.messageRepo.ContactsForDoctor(ctx, userID)
	default:
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't load contacts", zap.Error(err))
		return nil, err
	}

	for i := range contacts {
		last, err := s.messageRepo.LastMessage(ctx, userID, contacts[i].UserID)
		if err != nil {
			return nil, err
		}
		contacts[i].LastMessage = last

		unread, err := s.messageRepo.UnreadCount(ctx, contacts[i].UserID, userID)
		if err != nil {
			return nil, err
		}
		contacts[i].UnreadCount = unread
	}
	return contacts, nil
}
