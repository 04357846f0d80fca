package filelist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filelists.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestSeed(t *testing.T) {
	manifest := writeManifest(t, `
lists:
  downloads:
    - sound/custom/intro.wav
    - maps/de_dust2_night.bsp
  precache:
    - models/player/custom.mdl
`)

	r := NewRegistry()
	if err := NewSeeder(r, manifest).Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if !r.HasList("downloads") || !r.HasList("precache") {
		t.Fatal("Seed should create all manifest lists")
	}

	// Manifest order becomes index order
	path, err := r.EntryAt("downloads", 1)
	if err != nil {
		t.Fatalf("EntryAt failed: %v", err)
	}
	if path != "maps/de_dust2_night.bsp" {
		t.Errorf("Expected maps/de_dust2_night.bsp at index 1, got %s", path)
	}
}

func TestSeedIdempotent(t *testing.T) {
	manifest := writeManifest(t, `
lists:
  downloads:
    - sound/custom/intro.wav
`)

	r := NewRegistry()
	seeder := NewSeeder(r, manifest)
	if err := seeder.Seed(); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if err := seeder.Seed(); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	n, _ := r.Len("downloads")
	if n != 1 {
		t.Errorf("Reseeding should not duplicate entries, got %d", n)
	}
}

func TestSeedMissingManifest(t *testing.T) {
	r := NewRegistry()
	seeder := NewSeeder(r, filepath.Join(t.TempDir(), "absent.yaml"))

	if err := seeder.Seed(); err != nil {
		t.Errorf("Missing manifest should not be an error: %v", err)
	}
	if stats := r.Stats(); stats.TotalLists != 0 {
		t.Errorf("Registry should stay empty, got %+v", stats)
	}
}

func TestSeedMalformedManifest(t *testing.T) {
	manifest := writeManifest(t, "lists: [not, a, mapping")

	r := NewRegistry()
	if err := NewSeeder(r, manifest).Seed(); err == nil {
		t.Error("Malformed manifest should be an error")
	}
}
