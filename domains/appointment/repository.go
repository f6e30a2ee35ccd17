package appointment

import (
	"context"
	"time"
)

type Repository interface {
	InitSchema(ctx context.Context) error
	Create(ctx context.Context, a *Appointment) error
	ListByOwner(ctx context.Context, ownerID string) ([]Appointment, error)
	ListBetween(ctx context.Context, ownerID string, from, to time.Time) ([]Appointment, error)
	GetByID(ctx context.Context, ownerID, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, ownerID, id string) error
}
