package config

import (
	"encoding/json"
	"testing"
)

func TestParseVersionedConfig_LegacyConfig(t *testing.T) {
	// Legacy config without version field, flat layout keys
	legacyJSON := `{
		"theme": "latte",
		"rtl": true,
		"fps": 30
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	if err != nil {
		t.Fatalf("Failed to parse legacy config: %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Expected Theme 'latte', got '%s'", cfg.Theme)
	}
	if !cfg.Layout.RTL {
		t.Error("Expected legacy rtl to move under layout")
	}
	if cfg.Animation.FPS != 30 {
		t.Errorf("Expected FPS 30, got %d", cfg.Animation.FPS)
	}
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1JSON := `{
		"version": 1,
		"mouse": false,
		"layout": {"rtl": true}
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	if err != nil {
		t.Fatalf("Failed to parse v1 config: %v", err)
	}

	if !cfg.Layout.RTL {
		t.Error("Expected RTL from nested layout")
	}
	if cfg.Layout.MouseEnabled() {
		t.Error("Expected flat mouse=false to be migrated")
	}
}

func TestParseVersionedConfig_Version2(t *testing.T) {
	v2JSON := `{
		"version": 2,
		"animation": {"fps": 24, "damping": 0.5}
	}`

	cfg, err := ParseVersionedConfig([]byte(v2JSON))
	if err != nil {
		t.Fatalf("Failed to parse v2 config: %v", err)
	}

	if cfg.Animation.FPS != 24 || cfg.Animation.Damping != 0.5 {
		t.Errorf("Unexpected animation config %+v", cfg.Animation)
	}
}

func TestParseVersionedConfig_NestedConfigField(t *testing.T) {
	nestedJSON := `{
		"version": 2,
		"config": {"theme": "latte"}
	}`

	cfg, err := ParseVersionedConfig([]byte(nestedJSON))
	if err != nil {
		t.Fatalf("Failed to parse nested config: %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Expected Theme 'latte', got '%s'", cfg.Theme)
	}
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	futureJSON := `{
		"version": 999,
		"theme": "future"
	}`

	_, err := ParseVersionedConfig([]byte(futureJSON))
	if err == nil {
		t.Error("Expected error for future version, got nil")
	}
}

func TestParseVersionedConfig_InvalidJSON(t *testing.T) {
	if _, err := ParseVersionedConfig([]byte("{not json")); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestApplyMigrations_V0ToCurrent(t *testing.T) {
	data := map[string]interface{}{
		"theme": "macchiato",
		"rtl":   true,
	}

	migrated, err := ApplyMigrations(data, 0)
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	version, ok := migrated["version"].(int)
	if !ok || version != CurrentVersion {
		t.Errorf("Expected version %d, got %v", CurrentVersion, migrated["version"])
	}

	if _, ok := migrated["rtl"]; ok {
		t.Error("Expected top-level rtl to be removed")
	}
	layout, ok := migrated["layout"].(map[string]interface{})
	if !ok || layout["rtl"] != true {
		t.Errorf("Expected layout.rtl true, got %v", migrated["layout"])
	}

	// Verify data is preserved
	if theme, ok := migrated["theme"].(string); !ok || theme != "macchiato" {
		t.Errorf("Expected theme 'macchiato', got %v", migrated["theme"])
	}
}

func TestApplyMigrations_NestedValueWins(t *testing.T) {
	data := map[string]interface{}{
		"version": 1,
		"fps":     30,
		"animation": map[string]interface{}{
			"fps": 60,
		},
	}

	migrated, err := ApplyMigrations(data, 1)
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	animation := migrated["animation"].(map[string]interface{})
	if animation["fps"] != 60 {
		t.Errorf("Expected nested fps 60 to win, got %v", animation["fps"])
	}
}

func TestApplyMigrations_SectionNotObject(t *testing.T) {
	data := map[string]interface{}{
		"rtl":    true,
		"layout": "sideways",
	}

	if _, err := ApplyMigrations(data, 0); err == nil {
		t.Error("Expected error when layout is not an object")
	}
}

func TestApplyMigrations_NoPath(t *testing.T) {
	if _, err := ApplyMigrations(map[string]interface{}{}, -1); err == nil {
		t.Error("Expected error for unknown starting version")
	}
}

func TestMarshalVersionedConfig(t *testing.T) {
	cfg := &Config{
		Theme:  "latte",
		Layout: LayoutConfig{RTL: true},
	}

	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}

	if version, ok := result["version"].(float64); !ok || int(version) != CurrentVersion {
		t.Errorf("Expected version %d, got %v", CurrentVersion, result["version"])
	}
	if theme, ok := result["theme"].(string); !ok || theme != "latte" {
		t.Errorf("Expected theme 'latte', got %v", result["theme"])
	}
}

func TestRoundTrip(t *testing.T) {
	original := DefaultConfig()
	original.Theme = "latte"
	original.Layout.RTL = true
	original.Layout.SetMouse(false)
	original.Animation.Frequency = 5.5
	original.Log.Level = "debug"

	data, err := MarshalVersionedConfig(original)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	parsed, err := ParseVersionedConfig(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if parsed.Theme != original.Theme {
		t.Errorf("Theme mismatch: %s != %s", parsed.Theme, original.Theme)
	}
	if parsed.Layout.RTL != original.Layout.RTL {
		t.Errorf("RTL mismatch: %v != %v", parsed.Layout.RTL, original.Layout.RTL)
	}
	if parsed.Layout.MouseEnabled() {
		t.Error("Mouse should stay disabled")
	}
	if parsed.Animation.Frequency != original.Animation.Frequency {
		t.Errorf("Frequency mismatch: %v != %v", parsed.Animation.Frequency, original.Animation.Frequency)
	}
	if parsed.Log.Level != original.Log.Level {
		t.Errorf("Level mismatch: %s != %s", parsed.Log.Level, original.Log.Level)
	}
}

func TestCurrentVersion(t *testing.T) {
	if CurrentVersion < 1 {
		t.Errorf("CurrentVersion should be at least 1, got %d", CurrentVersion)
	}
}
