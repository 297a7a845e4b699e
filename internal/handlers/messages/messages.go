package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/messageservice"
	"github.com/dmoralesf/clinicore/pkg/utils"
)

type Service interface {
	Conversation(ctx context.Context, userID, contactID int) ([]domain.Message, error)
	Send(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	Contacts(ctx context.Context, userID int) ([]domain.Contact, error)
}

type MessageHandler struct {
	messageService Service
}

func New(messageService Service) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// GetContacts godoc
//
//	@Summary		List chat contacts
//	@Description	A patient's assigned doctors or a doctor's assigned patients, with last message and unread count
//	@Tags			Messages
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.ContactDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/messages/contacts/{userID} [get]
func (h *MessageHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	contacts, err := h.messageService.Contacts(r.Context(), userID)
	if err != nil {
		if errors.Is(err, messageservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		contact := dto.ContactDTO{
			UserID:       c.UserID,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Role:         string(c.Role),
			AssignmentID: c.AssignmentID,
			UnreadCount:  c.UnreadCount,
		}
		if c.LastMessage != nil {
			last := toMessageDTO(*c.LastMessage)
			contact.LastMessage = &last
		}
		result = append(result, contact)
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetConversation godoc
//
//	@Summary		Get a conversation
//	@Description	Full exchange between two users, oldest first; the contact's messages are marked read
//	@Tags			Messages
//	@Produce		json
//	@Param			userID		path		int	true	"Reader user ID"
//	@Param			contactID	path		int	true	"Contact user ID"
//	@Success		200			{array}		dto.MessageDTO
//	@Failure		400			{object}	utils.Response	"Invalid user id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/messages/{userID}/{contactID} [get]
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	contactID, err := strconv.Atoi(chi.URLParam(r, "contactID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contact id")
		return
	}
	messages, err := h.messageService.Conversation(r.Context(), userID, contactID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		result = append(result, toMessageDTO(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Send godoc
//
//	@Summary		Send a message
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Message body"
//	@Success		201		{object}	dto.SendMessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AssignmentID <= 0 || req.SenderID <= 0 || req.ReceiverID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid message data")
		return
	}
	msg, err := h.messageService.Send(r.Context(), &domain.Message{
		AssignmentID: req.AssignmentID,
		SenderID:     req.SenderID,
		ReceiverID:   req.ReceiverID,
		Text:         req.Text,
	})
	if err != nil {
		if errors.Is(err, messageservice.ErrEmptyMessage) {
			utils.RespondWithError(w, http.StatusBadRequest, "Message text is empty")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SendMessageResponseDTO{
		Message:    "Message successfully sent",
		NewMessage: toMessageDTO(*msg),
	})
}

func toMessageDTO(m domain.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		SenderID:     m.SenderID,
		ReceiverID:   m.ReceiverID,
		Text:         m.Text,
		Read:         m.Read,
		SentAt:       m.SentAt,
	}
}
