package graph

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LEETCOACH_NEO4J_URI", "neo4j://db.example:7687")
	t.Setenv("LEETCOACH_NEO4J_USER", "coach")
	t.Setenv("LEETCOACH_NEO4J_PASSWORD", "s3cret")
	t.Setenv("LEETCOACH_NEO4J_DATABASE", "practice")
	t.Setenv("LEETCOACH_NEO4J_TIMEOUT_SECONDS", "30")

	cfg := ConfigFromEnv()
	if cfg.URI != "neo4j://db.example:7687" {
		t.Errorf("URI = %q", cfg.URI)
	}
	if cfg.User != "coach" || cfg.Password != "s3cret" || cfg.Database != "practice" {
		t.Errorf("unexpected credentials: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"LEETCOACH_NEO4J_URI", "LEETCOACH_NEO4J_USER", "LEETCOACH_NEO4J_PASSWORD",
		"LEETCOACH_NEO4J_DATABASE", "LEETCOACH_NEO4J_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := ConfigFromEnv()
	if cfg.User != "neo4j" {
		t.Errorf("default user = %q, want neo4j", cfg.User)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("default timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestConfigFromEnv_IgnoresBadTimeout(t *testing.T) {
	t.Setenv("LEETCOACH_NEO4J_TIMEOUT_SECONDS", "not-a-number")
	if got := ConfigFromEnv().Timeout; got != 10*time.Second {
		t.Errorf("Timeout = %v, want default 10s", got)
	}

	t.Setenv("LEETCOACH_NEO4J_TIMEOUT_SECONDS", "-5")
	if got := ConfigFromEnv().Timeout; got != 10*time.Second {
		t.Errorf("Timeout = %v, want default 10s for negative input", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("expected error for missing URI")
	}
	if err := (Config{URI: "neo4j://localhost:7687"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestErrStoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ErrStoreUnavailable{Op: "topic stats", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	wrapped := fmt.Errorf("collect: %w", err)
	var unavailable *ErrStoreUnavailable
	if !errors.As(wrapped, &unavailable) {
		t.Error("errors.As failed through wrapping")
	}
	if unavailable.Op != "topic stats" {
		t.Errorf("Op = %q", unavailable.Op)
	}
}
