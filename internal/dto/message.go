package dto

import "time"

type SendMessageRequestDTO struct {
	AssignmentID int    `json:"asignacionId" validate:"required"`
	SenderID     int    `json:"emisorId" validate:"required"`
	ReceiverID   int    `json:"receptorId" validate:"required"`
	Text         string `json:"mensaje" validate:"required"`
}

type MessageDTO struct {
	ID           int       `json:"id"`
	AssignmentID int       `json:"asignacionId"`
	SenderID     int       `json:"emisorId"`
	ReceiverID   int       `json:"receptorId"`
	Text         string    `json:"mensaje"`
	Read         bool      `json:"leido"`
	SentAt       time.Time `json:"fecha_envio"`
}

type SendMessageResponseDTO struct {
	Message    string     `json:"message"`
	NewMessage MessageDTO `json:"newMessage"`
}

type ContactDTO struct {
	UserID       int         `json:"id"`
	FirstName    string      `json:"prinombre"`
	LastName     string      `json:"apepat"`
	Role         string      `json:"role"`
	AssignmentID int         `json:"asignacionId"`
	LastMessage  *MessageDTO `json:"lastMessage,omitempty"`
	UnreadCount  int         `json:"unreadCount"`
}
