package client

import (
	"context"
	"errors"
	"time"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrDuplicateClient = errors.New("client already exists")
)

// Client is a practice client kept in the local relational store.
type Client struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	DisplayName  string     `json:"display_name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	NotionPageID string     `json:"notion_page_id,omitempty"`
	Enabled      bool       `json:"enabled"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateClientRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

type UpdateClientRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
}

type IClientUsecase interface {
	Create(ctx context.Context, ownerID string, req CreateClientRequest) (Client, error)
	List(ctx context.Context, ownerID string) ([]Client, error)
	GetByID(ctx context.Context, ownerID, id string) (Client, error)
	Update(ctx context.Context, ownerID, id string, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, ownerID, id string) error
}
