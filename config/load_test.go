package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/firstperson/locomotion"
)

func restoreAfter(t *testing.T) {
	t.Helper()
	saved := current()
	savedFullscreen := Fullscreen
	t.Cleanup(func() {
		saved.install()
		Fullscreen = savedFullscreen
	})
}

func TestDefaultsValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
}

func TestApplyOverridesOnlyGivenKeys(t *testing.T) {
	restoreAfter(t)
	walk := Player.Locomotion.Movement.WalkSpeed

	err := Apply([]byte(`
player:
  locomotion:
    sprint:
      speed: 9
enemy:
  chase_speed: 2
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if Player.Locomotion.Sprint.Speed != 9 {
		t.Errorf("sprint speed = %v, want 9", Player.Locomotion.Sprint.Speed)
	}
	if Enemy.ChaseSpeed != 2 {
		t.Errorf("chase speed = %v, want 2", Enemy.ChaseSpeed)
	}
	if Player.Locomotion.Movement.WalkSpeed != walk {
		t.Errorf("walk speed changed to %v", Player.Locomotion.Movement.WalkSpeed)
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	restoreAfter(t)
	if err := Apply(nil); err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
}

func TestApplyRejectsUnknownKeys(t *testing.T) {
	restoreAfter(t)
	if err := Apply([]byte("player:\n  rocket_boots: true\n")); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestApplyInvalidLeavesConfigUntouched(t *testing.T) {
	restoreAfter(t)
	before := current()

	err := Apply([]byte(`
window:
  width: 1280
player:
  locomotion:
    camera:
      max_look_angle: 120
`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var cfgErr *locomotion.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error %v does not carry a ConfigurationError", err)
	}
	if C.Width != before.Window.Width {
		t.Errorf("window width changed to %d", C.Width)
	}
	if Player.Locomotion.Camera.MaxLookAngle != before.Player.Locomotion.Camera.MaxLookAngle {
		t.Error("max look angle changed despite failed validation")
	}
}

func TestApplyValidatesNonLocomotionFields(t *testing.T) {
	restoreAfter(t)
	if err := Apply([]byte("physics:\n  fixed_step: 0\n")); err == nil {
		t.Fatal("expected fixed_step error")
	}
}

func TestApplyEnemyShot(t *testing.T) {
	restoreAfter(t)
	if err := Apply([]byte("enemy:\n  fire_point: [0, 1, 0.5]\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Enemy.FirePoint != [3]float64{0, 1, 0.5} {
		t.Fatalf("fire point = %v", Enemy.FirePoint)
	}
	if err := Apply([]byte("enemy:\n  shot_lifetime: 0\n")); err == nil {
		t.Fatal("expected shot_lifetime error")
	}
}

func TestLoad(t *testing.T) {
	restoreAfter(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  log_level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Debug.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", Debug.LogLevel)
	}

	err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	restoreAfter(t)
	ApplyPreferences(Preferences{
		Sensitivity:  3.5,
		InvertLook:   true,
		HoldToCrouch: false,
		HoldToZoom:   true,
		Fullscreen:   true,
	})
	got := CurrentPreferences()
	want := Preferences{Sensitivity: 3.5, InvertLook: true, HoldToZoom: true, Fullscreen: true}
	if got != want {
		t.Fatalf("CurrentPreferences() = %+v, want %+v", got, want)
	}
}

func TestClampSensitivity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0, MinSensitivity},
		{-4, MinSensitivity},
		{50, MaxSensitivity},
	}
	for _, tt := range tests {
		if got := ClampSensitivity(tt.in); got != tt.want {
			t.Errorf("ClampSensitivity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
