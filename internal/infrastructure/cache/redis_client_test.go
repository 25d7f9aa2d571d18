package cache

import (
	"context"
	"testing"

	"budget_tracker/internal/config"
)

func TestConnectRedis_DisabledWithoutAddress(t *testing.T) {
	client, err := ConnectRedis(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client when REDIS_ADDR is empty")
	}
}
