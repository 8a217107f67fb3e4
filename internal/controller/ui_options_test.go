package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithListMode()(cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	WithViewMode()(cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithCheckMode()(cfg)
	if cfg.mode != ModeCheck {
		t.Fatalf("WithCheckMode() mode = %v, want %v", cfg.mode, ModeCheck)
	}
}

func TestNewStartConfig_DefaultsToCheck(t *testing.T) {
	if got := newStartConfig().mode; got != ModeCheck {
		t.Fatalf("newStartConfig() mode = %v, want %v", got, ModeCheck)
	}

	if got := newStartConfig(WithCheckMode(), WithViewMode()).mode; got != ModeView {
		t.Fatalf("newStartConfig() last option mode = %v, want %v", got, ModeView)
	}
}
