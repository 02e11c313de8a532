package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "materials.ini")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMaterials(t *testing.T) {
	path := writeProfile(t, `
[materials]
fck      = 25
alpha_cc = 1.0
`)

	m, err := LoadMaterials(path)
	if err != nil {
		t.Fatalf("LoadMaterials() error: %v", err)
	}
	if m.Fck != 25 {
		t.Errorf("Fck = %g, want 25", m.Fck)
	}
	if m.AlphaCC != 1.0 {
		t.Errorf("AlphaCC = %g, want 1.0", m.AlphaCC)
	}
	// Unset keys keep the defaults.
	if m.Fyk != ec2.DefaultFyk || m.EpsCU2 != ec2.DefaultEpsCU2 {
		t.Errorf("defaults not preserved: %+v", m)
	}
}

func TestLoadMaterialsInvalid(t *testing.T) {
	path := writeProfile(t, `
[materials]
fck = 80
`)

	if _, err := LoadMaterials(path); err == nil {
		t.Error("expected an error for fck above the law limit")
	}
}

func TestLoadMaterialsMissingFile(t *testing.T) {
	if _, err := LoadMaterials(filepath.Join(t.TempDir(), "none.ini")); err == nil {
		t.Error("expected an error for a missing profile")
	}
}
