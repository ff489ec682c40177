package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"timer": map[string]any{
			"allowExact":   true,
			"jitterWindow": "10m",
		},
		"reconcile": map[string]any{
			"cronSpec": "0 3 * * *",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "TIMER_ALLOWEXACT", want: "timer.allowExact"},
		{envKey: "TIMER_JITTERWINDOW", want: "timer.jitterWindow"},
		{envKey: "RECONCILE_CRONSPEC", want: "reconcile.cronSpec"},
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
