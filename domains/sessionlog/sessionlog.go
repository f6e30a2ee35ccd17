package sessionlog

import (
	"context"
	"errors"
	"time"
)

var ErrLogNotFound = errors.New("session log not found")

// Log is one session-log entry attached to an appointment. The balance
// fields hold Notion page IDs resolved against the reference snapshot.
type Log struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	AppointmentID string    `json:"appointment_id"`
	Entry         string    `json:"entry"`
	ModeIDs       []string  `json:"mode_ids,omitempty"`
	MuscleIDs     []string  `json:"muscle_ids,omitempty"`
	ChakraIDs     []string  `json:"chakra_ids,omitempty"`
	ChannelIDs    []string  `json:"channel_ids,omitempty"`
	AcupointIDs   []string  `json:"acupoint_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateLogRequest struct {
	AppointmentID string   `json:"appointment_id"`
	Entry         string   `json:"entry"`
	ModeIDs       []string `json:"mode_ids"`
	MuscleIDs     []string `json:"muscle_ids"`
	ChakraIDs     []string `json:"chakra_ids"`
	ChannelIDs    []string `json:"channel_ids"`
	AcupointIDs   []string `json:"acupoint_ids"`
}

type UpdateLogRequest struct {
	Entry       *string  `json:"entry,omitempty"`
	ModeIDs     []string `json:"mode_ids,omitempty"`
	MuscleIDs   []string `json:"muscle_ids,omitempty"`
	ChakraIDs   []string `json:"chakra_ids,omitempty"`
	ChannelIDs  []string `json:"channel_ids,omitempty"`
	AcupointIDs []string `json:"acupoint_ids,omitempty"`
}

type ISessionLogUsecase interface {
	Create(ctx context.Context, ownerID string, req CreateLogRequest) (Log, error)
	ListByAppointment(ctx context.Context, ownerID, appointmentID string) ([]Log, error)
	Update(ctx context.Context, ownerID, id string, req UpdateLogRequest) (Log, error)
	Delete(ctx context.Context, ownerID, id string) error
}
