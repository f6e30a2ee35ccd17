package appointment

import (
	"context"
	"errors"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Appointment is one booked session with a client.
type Appointment struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAppointmentRequest struct {
	ClientID string    `json:"client_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Notes    string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Title    *string    `json:"title,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

type IAppointmentUsecase interface {
	Create(ctx context.Context, ownerID string, req CreateAppointmentRequest) (Appointment, error)
	List(ctx context.Context, ownerID string) ([]Appointment, error)
	ListToday(ctx context.Context, ownerID string) ([]Appointment, error)
	GetByID(ctx context.Context, ownerID, id string) (Appointment, error)
	Update(ctx context.Context, ownerID, id string, req UpdateAppointmentRequest) (Appointment, error)
	Delete(ctx context.Context, ownerID, id string) error
}
