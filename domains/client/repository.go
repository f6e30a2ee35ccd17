package client

import "context"

type Repository interface {
	InitSchema(ctx context.Context) error
	Create(ctx context.Context, c *Client) error
	ListByOwner(ctx context.Context, ownerID string) ([]Client, error)
	GetByID(ctx context.Context, ownerID, id string) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, ownerID, id string) error
}
