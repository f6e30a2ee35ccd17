package profile

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProfileNotFound    = errors.New("practitioner profile not found")
	ErrNameMissing        = errors.New("practitioner name missing")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Practitioner is the authenticated owner of a session. Its ID doubles as
// the cache-key owner prefix.
type Practitioner struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"display_name"`
	PractitionerName string    `json:"practitioner_name"`
	NotionDatabaseID string    `json:"notion_database_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Complete reports whether the profile can be used for session work.
// Incomplete profiles trigger the profile-completion redirect flow.
func (p Practitioner) Complete() bool {
	return p.PractitionerName != ""
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type UpdateProfileRequest struct {
	DisplayName      *string `json:"display_name,omitempty"`
	PractitionerName *string `json:"practitioner_name,omitempty"`
	NotionDatabaseID *string `json:"notion_database_id,omitempty"`
}

type IProfileUsecase interface {
	Register(ctx context.Context, req RegisterRequest) (Practitioner, error)
	Login(ctx context.Context, req LoginRequest) (token string, p Practitioner, err error)
	GetByID(ctx context.Context, id string) (Practitioner, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (Practitioner, error)
}
