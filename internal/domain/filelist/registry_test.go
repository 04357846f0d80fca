package filelist

import (
	"errors"
	"testing"
)

func TestCreateList(t *testing.T) {
	r := NewRegistry()

	if !r.CreateList("downloads") {
		t.Fatal("CreateList should succeed for a new name")
	}
	if !r.HasList("downloads") {
		t.Error("List should exist after CreateList")
	}
	if r.CreateList("downloads") {
		t.Error("Second CreateList with the same name should fail")
	}
}

func TestDeleteList(t *testing.T) {
	r := NewRegistry()
	r.CreateList("downloads")
	r.AddEntry("downloads", "maps/de_dust2.bsp", false)

	if !r.DeleteList("downloads") {
		t.Fatal("DeleteList should succeed for an existing list")
	}
	if r.HasList("downloads") {
		t.Error("List should not exist after DeleteList")
	}
	if r.DeleteList("downloads") {
		t.Error("DeleteList should fail for an unknown name")
	}
	if _, err := r.EntryAt("downloads", 0); !errors.Is(err, ErrInvalidList) {
		t.Errorf("Operations on a deleted list should fail with ErrInvalidList, got %v", err)
	}
}

func TestAddEntry(t *testing.T) {
	r := NewRegistry()
	r.CreateList("sounds")

	idx, err := r.AddEntry("sounds", "sound/custom/round_start.wav", false)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("First entry should land at index 0, got %d", idx)
	}

	idx, err = r.AddEntry("sounds", "sound/custom/round_end.wav", false)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("Second entry should land at index 1, got %d", idx)
	}
}

func TestAddEntryDuplicate(t *testing.T) {
	r := NewRegistry()
	r.CreateList("sounds")
	r.AddEntry("sounds", "sound/custom/intro.wav", false)

	_, err := r.AddEntry("sounds", "sound/custom/intro.wav", false)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("Expected ErrDuplicateEntry, got %v", err)
	}

	n, _ := r.Len("sounds")
	if n != 1 {
		t.Errorf("List should still have exactly one entry, got %d", n)
	}
}

func TestAddEntryCaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.CreateList("models")
	r.AddEntry("models", "models/player.mdl", false)

	// Comparison is exact, no normalization
	if _, err := r.AddEntry("models", "Models/Player.mdl", false); err != nil {
		t.Errorf("Differently-cased path should not be a duplicate: %v", err)
	}
}

func TestAddEntryAutoCreate(t *testing.T) {
	r := NewRegistry()

	idx, err := r.AddEntry("fresh", "maps/de_inferno.bsp", true)
	if err != nil {
		t.Fatalf("AddEntry with autoCreate failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("Expected index 0, got %d", idx)
	}
	if !r.HasList("fresh") {
		t.Error("AddEntry with autoCreate should create the list")
	}
}

func TestAddEntryNoAutoCreate(t *testing.T) {
	r := NewRegistry()

	_, err := r.AddEntry("ghost", "maps/de_nuke.bsp", false)
	if !errors.Is(err, ErrInvalidList) {
		t.Fatalf("Expected ErrInvalidList, got %v", err)
	}
	if r.HasList("ghost") {
		t.Error("Failed AddEntry should not create the list")
	}
}

func TestEntryAt(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.AddEntry("maps", "maps/de_train.bsp", true)
	r.AddEntry("maps", "maps/de_aztec.bsp", true)

	path, err := r.EntryAt("maps", 1)
	if err != nil {
		t.Fatalf("EntryAt failed: %v", err)
	}
	if path != "maps/de_train.bsp" {
		t.Errorf("Expected maps/de_train.bsp at index 1, got %s", path)
	}

	for _, idx := range []int{-1, 3} {
		if _, err := r.EntryAt("maps", idx); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("EntryAt(%d) should fail with ErrInvalidIndex, got %v", idx, err)
		}
	}
}

func TestEntryAtEmptyList(t *testing.T) {
	r := NewRegistry()
	r.CreateList("empty")

	if _, err := r.EntryAt("empty", 0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("EntryAt on an empty list should fail with ErrInvalidIndex, got %v", err)
	}
}

func TestEntryAtUnknownList(t *testing.T) {
	r := NewRegistry()

	if _, err := r.EntryAt("ghost", 0); !errors.Is(err, ErrInvalidList) {
		t.Errorf("Expected ErrInvalidList, got %v", err)
	}
}

func TestRemoveEntryAtShiftsDown(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.AddEntry("maps", "maps/de_train.bsp", true)
	r.AddEntry("maps", "maps/de_aztec.bsp", true)

	if err := r.RemoveEntryAt("maps", 0); err != nil {
		t.Fatalf("RemoveEntryAt failed: %v", err)
	}

	path, _ := r.EntryAt("maps", 0)
	if path != "maps/de_train.bsp" {
		t.Errorf("Expected maps/de_train.bsp at index 0 after removal, got %s", path)
	}
	path, _ = r.EntryAt("maps", 1)
	if path != "maps/de_aztec.bsp" {
		t.Errorf("Expected maps/de_aztec.bsp at index 1 after removal, got %s", path)
	}
	if _, err := r.EntryAt("maps", 2); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Old last index should now be out of range, got %v", err)
	}
}

func TestRemoveEntry(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.AddEntry("maps", "maps/de_train.bsp", true)

	if err := r.RemoveEntry("maps", "maps/de_dust2.bsp"); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}

	idx, err := r.FindEntry("maps", "maps/de_train.bsp")
	if err != nil {
		t.Fatalf("FindEntry failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("Remaining entry should shift to index 0, got %d", idx)
	}
}

func TestRemoveEntryNotFound(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)

	err := r.RemoveEntry("maps", "maps/de_nuke.bsp")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("Expected ErrEntryNotFound, got %v", err)
	}

	// Failed removal must leave the list unchanged
	entries, _ := r.Entries("maps")
	if len(entries) != 1 || entries[0] != "maps/de_dust2.bsp" {
		t.Errorf("List changed after failed removal: %v", entries)
	}
}

func TestRemoveEntryUnknownList(t *testing.T) {
	r := NewRegistry()

	if err := r.RemoveEntry("ghost", "x"); !errors.Is(err, ErrInvalidList) {
		t.Errorf("Expected ErrInvalidList, got %v", err)
	}
	if err := r.RemoveEntryAt("ghost", 0); !errors.Is(err, ErrInvalidList) {
		t.Errorf("Expected ErrInvalidList, got %v", err)
	}
}

func TestFindEntry(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.AddEntry("maps", "maps/de_train.bsp", true)

	idx, err := r.FindEntry("maps", "maps/de_train.bsp")
	if err != nil {
		t.Fatalf("FindEntry failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}

	idx, err = r.FindEntry("maps", "maps/missing.bsp")
	if err != nil {
		t.Fatalf("Absent entry should not be an error: %v", err)
	}
	if idx != NotFound {
		t.Errorf("Expected NotFound sentinel, got %d", idx)
	}

	if _, err := r.FindEntry("ghost", "x"); !errors.Is(err, ErrInvalidList) {
		t.Errorf("Expected ErrInvalidList, got %v", err)
	}
}

func TestEntriesEmptyListNotNil(t *testing.T) {
	r := NewRegistry()
	r.CreateList("empty")

	entries, err := r.Entries("empty")
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if entries == nil {
		t.Error("Empty list should yield an empty slice, not nil")
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)

	entries, _ := r.Entries("maps")
	entries[0] = "mutated"

	path, _ := r.EntryAt("maps", 0)
	if path != "maps/de_dust2.bsp" {
		t.Error("Entries should return a copy, not the backing slice")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.CreateList("sounds")

	r.Clear()

	if r.HasList("maps") || r.HasList("sounds") {
		t.Error("Clear should release all lists")
	}
	if stats := r.Stats(); stats.TotalLists != 0 || stats.TotalEntries != 0 {
		t.Errorf("Expected empty stats after Clear, got %+v", stats)
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.AddEntry("maps", "maps/de_dust2.bsp", true)
	r.AddEntry("maps", "maps/de_train.bsp", true)
	r.AddEntry("sounds", "sound/custom/intro.wav", true)
	r.CreateList("models")

	stats := r.Stats()
	if stats.TotalLists != 3 {
		t.Errorf("Expected 3 lists, got %d", stats.TotalLists)
	}
	if stats.TotalEntries != 3 {
		t.Errorf("Expected 3 entries, got %d", stats.TotalEntries)
	}
}
