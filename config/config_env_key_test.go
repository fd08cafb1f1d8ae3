package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "pond",
		},
		"auth": map[string]any{
			"jwtSecret":         "",
			"resetTokenTtl":     "30m",
			"requireUploadAuth": false,
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "AUTH_RESETTOKENTTL", want: "auth.resetTokenTtl"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthPolicy(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Auth == nil {
		t.Fatal("expected Auth section to be initialized")
	}
	if cfg.Auth.PBKDF2Iterations != 100_000 {
		t.Fatalf("PBKDF2Iterations = %d, want 100000", cfg.Auth.PBKDF2Iterations)
	}
	if cfg.Auth.MinPasswordLength != 6 {
		t.Fatalf("MinPasswordLength = %d, want 6", cfg.Auth.MinPasswordLength)
	}
	if got := cfg.Auth.TokenTTL.Hours(); got != 7*24 {
		t.Fatalf("TokenTTL = %v hours, want %v", got, 7*24)
	}
	if got := cfg.Auth.ResetTokenTTL.Minutes(); got != 30 {
		t.Fatalf("ResetTokenTTL = %v minutes, want 30", got)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{PBKDF2Iterations: 250_000, MinPasswordLength: 12}}

	applyDefaults(cfg)

	if cfg.Auth.PBKDF2Iterations != 250_000 {
		t.Fatalf("PBKDF2Iterations = %d, want 250000", cfg.Auth.PBKDF2Iterations)
	}
	if cfg.Auth.MinPasswordLength != 12 {
		t.Fatalf("MinPasswordLength = %d, want 12", cfg.Auth.MinPasswordLength)
	}
}
