package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	Save(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint64) (*Client, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Client, error)
	GetByExternalIDForUpdate(ctx context.Context, externalID string) (*Client, error)
	List(ctx context.Context) ([]Client, error)
}
