package valkey

import (
	"context"
	"fmt"
	"strings"
	"time"

	valkeylib "github.com/valkey-io/valkey-go"
)

const connectTimeout = 5 * time.Second

// Config for the optional Valkey cache backend.
type Config struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// Client carries the valkey-go client plus the application key prefix.
// Create it via NewClient and Close it on shutdown; consumers build their
// own commands against Inner and namespace keys through Key.
type Client struct {
	inner     valkeylib.Client
	keyPrefix string
}

// NewClient connects and verifies the connection with a ping before
// handing the client out.
func NewClient(cfg Config) (*Client, error) {
	opts := valkeylib.ClientOption{
		InitAddress: []string{cfg.Address},
		SelectDB:    cfg.DB,
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	inner, err := valkeylib.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	c := &Client{
		inner:     inner,
		keyPrefix: strings.TrimSuffix(cfg.KeyPrefix, ":"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		inner.Close()
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}
	return c, nil
}

// Inner returns the underlying valkey-go client for command building.
func (c *Client) Inner() valkeylib.Client {
	return c.inner
}

// Key joins parts under the configured prefix:
// Key("cache", "local") -> "kinesia:cache:local".
func (c *Client) Key(parts ...string) string {
	if c.keyPrefix == "" {
		return strings.Join(parts, ":")
	}
	return strings.Join(append([]string{c.keyPrefix}, parts...), ":")
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.inner.Do(ctx, c.inner.B().Ping().Build()).Error()
}

func (c *Client) Close() {
	c.inner.Close()
}
