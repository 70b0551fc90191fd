package config

import (
	"testing"
	"time"
)

func TestLoadConfigRequiredVars(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("WALLET_ADDRESS", "0x00000000000000000000000000000000000000AA")
	// Empty optional vars fall through to their defaults.
	t.Setenv("WEB_PORT", "")
	t.Setenv("PRICE_API_URL", "")
	t.Setenv("REFRESH_INTERVAL", "")

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if EthRPCURL != "http://127.0.0.1:8545" {
		t.Errorf("EthRPCURL = %q", EthRPCURL)
	}
	if WebPort != "8080" {
		t.Errorf("WebPort = %q, want default 8080", WebPort)
	}
	if RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v, want default 5m", RefreshInterval)
	}
}

func TestLoadConfigCustomInterval(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("WALLET_ADDRESS", "0x00000000000000000000000000000000000000AA")
	t.Setenv("REFRESH_INTERVAL", "90s")

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if RefreshInterval != 90*time.Second {
		t.Errorf("RefreshInterval = %v, want 90s", RefreshInterval)
	}
}

func TestLoadConfigRejectsBadInterval(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("WALLET_ADDRESS", "0x00000000000000000000000000000000000000AA")

	for _, bad := range []string{"soon", "-1m", "0s"} {
		t.Setenv("REFRESH_INTERVAL", bad)
		if err := LoadConfig(); err == nil {
			t.Errorf("expected error for REFRESH_INTERVAL=%q", bad)
		}
	}
}
