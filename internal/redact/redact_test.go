package redact

import "testing"

func TestEnv(t *testing.T) {
	env := map[string]string{
		"RUST_BACKTRACE": "1",
		"API_TOKEN":      "supersecretvalue",
		"DB_PASSWORD":    "hunter2",
		"HARMLESS":       "ghp_abcdef123456",
	}

	masked := Env(env)

	if masked["RUST_BACKTRACE"] != "1" {
		t.Errorf("RUST_BACKTRACE = %q, want unmasked", masked["RUST_BACKTRACE"])
	}
	if masked["API_TOKEN"] != "****alue" {
		t.Errorf("API_TOKEN = %q, want masked with suffix", masked["API_TOKEN"])
	}
	if masked["DB_PASSWORD"] != "****ter2" {
		t.Errorf("DB_PASSWORD = %q", masked["DB_PASSWORD"])
	}
	// Token prefix in the value masks regardless of key name
	if masked["HARMLESS"] != "****3456" {
		t.Errorf("HARMLESS = %q, want masked by token prefix", masked["HARMLESS"])
	}

	// Original map untouched
	if env["API_TOKEN"] != "supersecretvalue" {
		t.Error("Env() mutated its input")
	}
}

func TestEnv_Nil(t *testing.T) {
	if Env(nil) != nil {
		t.Error("Env(nil) should return nil")
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short fully masked", in: "abc", want: "********"},
		{name: "boundary fully masked", in: "abcd", want: "********"},
		{name: "long keeps suffix", in: "supersecret", want: "****cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.in); got != tt.want {
				t.Errorf("Value(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "API_TOKEN", want: true},
		{key: "api_token", want: true},
		{key: "SSH_PRIVATE_KEY", want: true},
		{key: "AUTH_HEADER", want: true},
		{key: "RUST_BACKTRACE", want: false},
		{key: "PATH", want: false},
	}
	for _, tt := range tests {
		if got := SensitiveKey(tt.key); got != tt.want {
			t.Errorf("SensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
