package filelist

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"
)

// Seeder loads predefined lists from a YAML manifest at host startup.
// The registry itself never touches the filesystem; reading the manifest is
// host integration, and list state is not written back.
type Seeder struct {
	registry *Registry
	manifest string
}

// manifestFile is the on-disk shape of a seed manifest:
//
//	lists:
//	  downloads:
//	    - sound/custom/intro.wav
//	    - maps/de_dust2_night.bsp
type manifestFile struct {
	Lists map[string][]string `yaml:"lists"`
}

// NewSeeder creates a seeder for the given manifest path
func NewSeeder(registry *Registry, manifest string) *Seeder {
	return &Seeder{
		registry: registry,
		manifest: manifest,
	}
}

// Seed loads all lists from the manifest. A missing manifest is not an
// error; the host runs fine with an empty registry. Duplicate entries in
// the manifest are skipped so reseeding is idempotent.
func (s *Seeder) Seed() error {
	if _, err := os.Stat(s.manifest); os.IsNotExist(err) {
		log.Printf("Warning: Seed manifest not found: %s", s.manifest)
		return nil
	}

	data, err := os.ReadFile(s.manifest)
	if err != nil {
		return fmt.Errorf("failed to read seed manifest: %w", err)
	}

	var manifest manifestFile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("failed to parse seed manifest: %w", err)
	}

	var loaded, skipped int
	for name, paths := range manifest.Lists {
		for _, path := range paths {
			if _, err := s.registry.AddEntry(name, path, true); err != nil {
				if errors.Is(err, ErrDuplicateEntry) {
					skipped++
					continue
				}
				return fmt.Errorf("failed to seed list %s: %w", name, err)
			}
			loaded++
		}
	}

	log.Printf("Seeding complete: %d entries loaded, %d skipped", loaded, skipped)
	return nil
}
