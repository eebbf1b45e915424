package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFieldsAreAllNonZero(t *testing.T) {
	cfg := Default()
	if cfg.Standard == "" {
		t.Error("Standard must not be the zero value")
	}
	if cfg.TabWidth == 0 {
		t.Error("TabWidth must not be the zero value")
	}
	if !cfg.ColorDiagnostics {
		t.Error("ColorDiagnostics default should be true")
	}
	if cfg.ListingWidth == 0 {
		t.Error("ListingWidth must not be the zero value")
	}
	if cfg.InspectorHistory == 0 {
		t.Error("InspectorHistory must not be the zero value")
	}
}

func TestLoadWithoutConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	defer os.Chdir(old)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CYMB_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Fatalf("Load() with no file present = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadAppliesLocalConfigFile(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	defer os.Chdir(old)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CYMB_CONFIG", "")

	contents := "tab_width = 4\nstandard = \"c17\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".cymb.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != 4 || cfg.Standard != "c17" {
		t.Fatalf("got TabWidth=%d Standard=%q, want 4/c17", cfg.TabWidth, cfg.Standard)
	}
	// Fields not present in the file keep their defaults.
	if cfg.InspectorHistory != 1000 {
		t.Fatalf("InspectorHistory = %d, want default 1000 preserved", cfg.InspectorHistory)
	}
}
