package graph

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds the Neo4j connection settings.
type Config struct {
	URI      string
	User     string
	Password string
	Database string

	// Timeout bounds every call to the store. Calls that exceed it fail
	// with ErrStoreUnavailable instead of hanging. Default: 10s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with standard defaults.
func DefaultConfig() Config {
	return Config{
		User:    "neo4j",
		Timeout: 10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from LEETCOACH_NEO4J_* environment
// variables, falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LEETCOACH_NEO4J_URI"); v != "" {
		cfg.URI = v
	}
	if v := os.Getenv("LEETCOACH_NEO4J_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("LEETCOACH_NEO4J_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("LEETCOACH_NEO4J_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("LEETCOACH_NEO4J_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// Validate checks that the required connection settings are present.
func (c Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("LEETCOACH_NEO4J_URI is required")
	}
	return nil
}

// Client wraps the Neo4j driver. Each store call opens its own session and
// releases it on every exit path; the client itself holds no session state.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
}

// Connect creates a Client and verifies connectivity within the configured
// timeout. Connection failure surfaces as ErrStoreUnavailable.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	auth := neo4j.BasicAuth(cfg.User, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		c.SocketConnectTimeout = cfg.Timeout
	})
	if err != nil {
		return nil, &ErrStoreUnavailable{Op: "connect", Err: err}
	}

	verifyCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, &ErrStoreUnavailable{Op: "verify connectivity", Err: err}
	}

	return &Client{
		driver:   driver,
		database: cfg.Database,
		timeout:  cfg.Timeout,
	}, nil
}

// Close shuts down the driver and its connection pool.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.driver == nil {
		return nil
	}
	return c.driver.Close(ctx)
}

// readSession opens a read session against the configured database.
func (c *Client) readSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
}

// writeSession opens a write session against the configured database.
func (c *Client) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
}
