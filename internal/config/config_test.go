package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DISCORD_TOKEN", "TOKEN", "CALL_TIMEOUT", "REPLY_RATE", "REPLY_RATE_MIN", "REPLY_RATE_MAX", "HEALTH_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "abc" {
		t.Errorf("token = %q", cfg.DiscordToken)
	}
	if cfg.CallTimeout != 15*time.Second {
		t.Errorf("call timeout = %s, want 15s", cfg.CallTimeout)
	}
	if cfg.ReplyRate != 5 || cfg.ReplyRateMin != 1 || cfg.ReplyRateMax != 10 {
		t.Errorf("reply rates = %v/%v/%v", cfg.ReplyRate, cfg.ReplyRateMin, cfg.ReplyRateMax)
	}
	if cfg.HealthAddr != "" {
		t.Errorf("health addr = %q, want disabled", cfg.HealthAddr)
	}
}

func TestLoadMissingToken(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("Load() error = %v, want ErrMissingToken", err)
	}
}

func TestLoadTokenFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN", "legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "legacy" {
		t.Fatalf("token = %q, want legacy", cfg.DiscordToken)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "abc")
	t.Setenv("CALL_TIMEOUT", "3s")
	t.Setenv("HEALTH_ADDR", ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CallTimeout != 3*time.Second {
		t.Errorf("call timeout = %s, want 3s", cfg.CallTimeout)
	}
	if cfg.HealthAddr != ":9000" {
		t.Errorf("health addr = %q", cfg.HealthAddr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"unparsable timeout": {"CALL_TIMEOUT": "soon"},
		"zero timeout":       {"CALL_TIMEOUT": "0s"},
		"max below min":      {"REPLY_RATE_MIN": "5", "REPLY_RATE_MAX": "2"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DISCORD_TOKEN", "abc")
			for k, v := range vars {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("Load() succeeded, want error")
			}
		})
	}
}
