package config

import (
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Error("default timeouts not applied")
	}
	if cfg.Limits.MaxValueBytes != 65536 {
		t.Errorf("default max_value_bytes = %d, want 65536", cfg.Limits.MaxValueBytes)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 9000, ReadTimeoutSec: 5},
		Limits: LimitsConfig{MaxValueBytes: 1024},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 {
		t.Errorf("port overwritten: %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 5 {
		t.Errorf("read timeout overwritten: %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Limits.MaxValueBytes != 1024 {
		t.Errorf("max_value_bytes overwritten: %d", cfg.Limits.MaxValueBytes)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_LogLevels(t *testing.T) {
	valid := []string{"", "debug", "info", "warn", "error"}
	for _, level := range valid {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}, Logging: LoggingConfig{Level: level}}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for level %q: %v", level, err)
			}
		})
	}

	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Logging: LoggingConfig{Level: "verbose"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("STRAND_TEST_PORT", "9090")

	out := string(expandEnvVars([]byte("port: ${STRAND_TEST_PORT}")))
	if out != "port: 9090" {
		t.Errorf("expanded = %q", out)
	}

	out = string(expandEnvVars([]byte("level: ${STRAND_TEST_UNSET:-info}")))
	if out != "level: info" {
		t.Errorf("expanded with default = %q", out)
	}
}
