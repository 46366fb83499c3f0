package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "9020" {
		t.Errorf("unexpected default port: %s", cfg.Port)
	}
	if cfg.DBHost != "hospital-db" {
		t.Errorf("unexpected default db host: %s", cfg.DBHost)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("unexpected default embedding model: %s", cfg.EmbeddingModel)
	}
	if cfg.SearchLimit != 100 || cfg.MaxAnalysis != 3 {
		t.Errorf("unexpected pipeline defaults: limit=%d max=%d", cfg.SearchLimit, cfg.MaxAnalysis)
	}
	if cfg.ThrottleMode != "fixed" || cfg.PacingSeconds != 2 {
		t.Errorf("unexpected throttle defaults: mode=%s pacing=%d", cfg.ThrottleMode, cfg.PacingSeconds)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RECOMMEND_MAX_ANALYSIS", "5")
	t.Setenv("RECOMMEND_THROTTLE", "token_bucket")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port override not applied: %s", cfg.Port)
	}
	if cfg.MaxAnalysis != 5 {
		t.Errorf("max analysis override not applied: %d", cfg.MaxAnalysis)
	}
	if cfg.ThrottleMode != "token_bucket" {
		t.Errorf("throttle override not applied: %s", cfg.ThrottleMode)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("RECOMMEND_SEARCH_LIMIT", "many")

	cfg := Load()

	if cfg.SearchLimit != 100 {
		t.Errorf("expected fallback search limit, got %d", cfg.SearchLimit)
	}
}

func TestSecretFromFile(t *testing.T) {
	secretPath := filepath.Join(t.TempDir(), "db_password")
	if err := os.WriteFile(secretPath, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	t.Setenv("DB_PASSWORD_FILE", secretPath)

	cfg := Load()

	if cfg.DBPassword != "s3cret" {
		t.Errorf("expected trimmed file secret, got %q", cfg.DBPassword)
	}
}

func TestSecretEnvBeatsFile(t *testing.T) {
	secretPath := filepath.Join(t.TempDir(), "db_password")
	if err := os.WriteFile(secretPath, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PASSWORD_FILE", secretPath)

	cfg := Load()

	if cfg.DBPassword != "from-env" {
		t.Errorf("expected env secret to win, got %q", cfg.DBPassword)
	}
}
