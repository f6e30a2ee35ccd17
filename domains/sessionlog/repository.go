package sessionlog

import "context"

type Repository interface {
	InitSchema(ctx context.Context) error
	Create(ctx context.Context, l *Log) error
	ListByAppointment(ctx context.Context, ownerID, appointmentID string) ([]Log, error)
	GetByID(ctx context.Context, ownerID, id string) (*Log, error)
	Update(ctx context.Context, l *Log) error
	Delete(ctx context.Context, ownerID, id string) error
}
