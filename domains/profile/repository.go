package profile

import "context"

type Repository interface {
	InitSchema(ctx context.Context) error
	Create(ctx context.Context, p *Practitioner, passwordHash string) error
	GetByID(ctx context.Context, id string) (*Practitioner, error)
	GetByEmail(ctx context.Context, email string) (*Practitioner, string, error)
	Update(ctx context.Context, p *Practitioner) error
}
