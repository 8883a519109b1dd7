package envutil

import (
	"os"
	"testing"
)

func TestGetStringEnv(t *testing.T) {
	os.Setenv("TEST_STRING", "value")
	defer os.Unsetenv("TEST_STRING")

	if got := GetStringEnv("TEST_STRING", "default"); got != "value" {
		t.Errorf("GetStringEnv() = %q, want %q", got, "value")
	}

	if got := GetStringEnv("NONEXISTENT", "default"); got != "default" {
		t.Errorf("GetStringEnv() = %q, want %q", got, "default")
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		envValue string
		want     bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"invalid", false}, // Invalid values default to false
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			os.Setenv("TEST_BOOL", tt.envValue)
			defer os.Unsetenv("TEST_BOOL")

			if got := GetBoolEnv("TEST_BOOL", false); got != tt.want {
				t.Errorf("GetBoolEnv(%q) = %v, want %v", tt.envValue, got, tt.want)
			}
		})
	}
}

func TestGetBoolEnv_UnsetUsesDefault(t *testing.T) {
	os.Unsetenv("TEST_BOOL_UNSET")

	if got := GetBoolEnv("TEST_BOOL_UNSET", true); got != true {
		t.Errorf("GetBoolEnv() = %v, want true", got)
	}
	if got := GetBoolEnv("TEST_BOOL_UNSET", false); got != false {
		t.Errorf("GetBoolEnv() = %v, want false", got)
	}
}

func TestGetBoolEnv_InvalidKeepsDefault(t *testing.T) {
	os.Setenv("TEST_BOOL_BAD", "maybe")
	defer os.Unsetenv("TEST_BOOL_BAD")

	if got := GetBoolEnv("TEST_BOOL_BAD", true); got != true {
		t.Errorf("GetBoolEnv() with invalid value = %v, want default true", got)
	}
}
