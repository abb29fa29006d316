package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"bcryptCost": 12,
			"argon2": map[string]any{
				"memoryKiB": 65536,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"database": map[string]any{
			"driver":      "postgres",
			"autoMigrate": true,
		},
		"passwordStrength": map[string]any{
			"requireUppercase": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_ARGON2_MEMORYKIB", want: "auth.argon2.memoryKiB"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DATABASE_DRIVER", want: "database.driver"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "PASSWORDSTRENGTH_REQUIREUPPERCASE", want: "passwordStrength.requireUppercase"},
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
