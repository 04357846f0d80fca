package filelist

import (
	"errors"
	"fmt"
)

// NotFound is returned by FindEntry when the path is absent from the list.
const NotFound = -1

// Sentinel errors for registry operations. Callers match with errors.Is.
var (
	ErrInvalidList    = errors.New("invalid list")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrEntryNotFound  = errors.New("entry not found")
)

// Registry maps list names to ordered sequences of path entries.
type Registry struct {
	lists map[string][]string
}

// Stats contains registry statistics
type Stats struct {
	TotalLists   int `json:"total_lists"`
	TotalEntries int `json:"total_entries"`
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		lists: make(map[string][]string),
	}
}

// CreateList creates an empty list under name.
// Returns false if the name is already taken.
func (r *Registry) CreateList(name string) bool {
	if _, exists := r.lists[name]; exists {
		return false
	}
	r.lists[name] = []string{}
	return true
}

// DeleteList removes the list and releases its entries.
// Returns false if the name is unknown.
func (r *Registry) DeleteList(name string) bool {
	if _, exists := r.lists[name]; !exists {
		return false
	}
	delete(r.lists, name)
	return true
}

// HasList reports whether a list exists under name.
func (r *Registry) HasList(name string) bool {
	_, exists := r.lists[name]
	return exists
}

// AddEntry appends path to the named list and returns its new index.
// When the list is absent it is created first if autoCreate is set,
// otherwise the call fails with ErrInvalidList. Adding a path already
// present fails with ErrDuplicateEntry and leaves the list unchanged.
func (r *Registry) AddEntry(name, path string, autoCreate bool) (int, error) {
	entries, exists := r.lists[name]
	if !exists {
		if !autoCreate {
			return 0, fmt.Errorf("%w: %s", ErrInvalidList, name)
		}
		entries = []string{}
	}

	if indexOf(entries, path) != NotFound {
		return 0, fmt.Errorf("%w: %q in list %s", ErrDuplicateEntry, path, name)
	}

	r.lists[name] = append(entries, path)
	return len(entries), nil
}

// EntryAt returns the path at index in the named list.
func (r *Registry) EntryAt(name string, index int) (string, error) {
	entries, exists := r.lists[name]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	if index < 0 || index >= len(entries) {
		return "", fmt.Errorf("%w: %d in list %s (length %d)", ErrInvalidIndex, index, name, len(entries))
	}
	return entries[index], nil
}

// RemoveEntry removes path from the named list. Entries after the removed
// one shift down by one index.
func (r *Registry) RemoveEntry(name, path string) error {
	entries, exists := r.lists[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	idx := indexOf(entries, path)
	if idx == NotFound {
		return fmt.Errorf("%w: %q in list %s", ErrEntryNotFound, path, name)
	}
	r.lists[name] = append(entries[:idx], entries[idx+1:]...)
	return nil
}

// RemoveEntryAt removes the entry at index with the same shift-down
// behavior as RemoveEntry.
func (r *Registry) RemoveEntryAt(name string, index int) error {
	entries, exists := r.lists[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	if index < 0 || index >= len(entries) {
		return fmt.Errorf("%w: %d in list %s (length %d)", ErrInvalidIndex, index, name, len(entries))
	}
	r.lists[name] = append(entries[:index], entries[index+1:]...)
	return nil
}

// FindEntry returns the index of path in the named list, or NotFound when
// the path is absent. Absence is a normal outcome, not an error; only an
// unknown list name fails.
func (r *Registry) FindEntry(name, path string) (int, error) {
	entries, exists := r.lists[name]
	if !exists {
		return NotFound, fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	return indexOf(entries, path), nil
}

// Len returns the number of entries in the named list.
func (r *Registry) Len(name string) (int, error) {
	entries, exists := r.lists[name]
	if !exists {
		return 0, fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	return len(entries), nil
}

// Entries returns a copy of the named list's entries in order.
func (r *Registry) Entries(name string) ([]string, error) {
	entries, exists := r.lists[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrInvalidList, name)
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}

// ListNames returns the names of all lists.
func (r *Registry) ListNames() []string {
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	return names
}

// Clear releases all lists. Called at host shutdown.
func (r *Registry) Clear() {
	r.lists = make(map[string][]string)
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	var entries int
	for _, list := range r.lists {
		entries += len(list)
	}
	return Stats{
		TotalLists:   len(r.lists),
		TotalEntries: entries,
	}
}

// indexOf scans for an exact case-sensitive match. Lists stay small enough
// that a linear scan beats maintaining a side index.
func indexOf(entries []string, path string) int {
	for i, e := range entries {
		if e == path {
			return i
		}
	}
	return NotFound
}
