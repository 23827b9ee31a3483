package builder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDriverMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drivers.yaml")
	content := `version: "2"
drivers:
  "Area in sq. meter": area_in_sq_meter
  "No. of Headcount": no_of_headcount
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	dm, err := LoadDriverMap(path)
	if err != nil {
		t.Fatalf("LoadDriverMap failed: %v", err)
	}
	if dm.Version != "2" {
		t.Errorf("Version = %q, want 2", dm.Version)
	}
	if col, ok := dm.Canonical("No. of Headcount"); !ok || col != "no_of_headcount" {
		t.Errorf("Canonical() = %q %v, want no_of_headcount true", col, ok)
	}
}

func TestLoadDriverMapEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("version: \"1\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadDriverMap(path); err == nil {
		t.Error("expected error for driver map without entries")
	}
}

func TestLoadDriverMapMissingFile(t *testing.T) {
	if _, err := LoadDriverMap(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDriverMapInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("drivers: [not a map"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadDriverMap(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
