// Package filelist exposes the file-path list registry to scripts through
// the host's tool interface.
package filelist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/modforge/scripthost/internal/domain/filelist"
	"github.com/modforge/scripthost/internal/shared/types"
)

// Provider implements file-list operations over a filelist.Registry.
// The core registry is single-threaded by contract; the provider owns the
// one lock that serializes operations from the host's concurrent surfaces.
type Provider struct {
	mu         sync.Mutex
	registry   *filelist.Registry
	maxPathLen int
}

// NewProvider creates a filelist provider. maxPathLen is the host platform's
// path-length ceiling; paths longer than it are rejected at this boundary.
func NewProvider(registry *filelist.Registry, maxPathLen int) *Provider {
	return &Provider{
		registry:   registry,
		maxPathLen: maxPathLen,
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "filelist",
		Name:        "File List Service",
		Description: "Named, ordered, duplicate-free lists of file paths for download tables and precache lists",
		Category:    types.CategoryFiles,
		Capabilities: []string{
			"create",
			"destroy",
			"add",
			"remove",
			"indexed_access",
			"find",
			"statistics",
		},
		Tools: p.getTools(),
	}
}

func (p *Provider) getTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filelist.create",
			Name:        "Create List",
			Description: "Create an empty named list",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.destroy",
			Name:        "Destroy List",
			Description: "Delete a list and release its entries",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.exists",
			Name:        "List Exists",
			Description: "Check whether a named list exists",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.add",
			Name:        "Add Entry",
			Description: "Append a path to a list and return its index",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
				{Name: "path", Type: "string", Description: "File path to append", Required: true},
				{Name: "auto_create", Type: "boolean", Description: "Create the list if absent (default true)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.get",
			Name:        "Get Entry",
			Description: "Get the path at an index",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
				{Name: "index", Type: "number", Description: "Entry index", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.remove",
			Name:        "Remove Entry",
			Description: "Remove a path from a list by value",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
				{Name: "path", Type: "string", Description: "File path to remove", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.remove_at",
			Name:        "Remove Entry At",
			Description: "Remove the entry at an index",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
				{Name: "index", Type: "number", Description: "Entry index", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.find",
			Name:        "Find Entry",
			Description: "Find the index of a path, -1 when absent",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
				{Name: "path", Type: "string", Description: "File path to find", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.entries",
			Name:        "List Entries",
			Description: "Get all entries of a list in order",
			Parameters: []types.Parameter{
				{Name: "list", Type: "string", Description: "List name", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filelist.lists",
			Name:        "List Names",
			Description: "Get the names of all lists",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
		{
			ID:          "filelist.stats",
			Name:        "Get Statistics",
			Description: "Get registry statistics",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Execute runs a filelist operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, scriptCtx *types.Context) (*types.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch toolID {
	case "filelist.create":
		return p.create(params)
	case "filelist.destroy":
		return p.destroy(params)
	case "filelist.exists":
		return p.exists(params)
	case "filelist.add":
		return p.add(params)
	case "filelist.get":
		return p.get(params)
	case "filelist.remove":
		return p.remove(params)
	case "filelist.remove_at":
		return p.removeAt(params)
	case "filelist.find":
		return p.find(params)
	case "filelist.entries":
		return p.entries(params)
	case "filelist.lists":
		return p.lists()
	case "filelist.stats":
		return p.stats()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) create(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	created := p.registry.CreateList(name)

	// An existing list is a caller-checked condition, not a failure
	return success(map[string]interface{}{
		"list":    name,
		"created": created,
	})
}

func (p *Provider) destroy(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	deleted := p.registry.DeleteList(name)

	return success(map[string]interface{}{
		"list":    name,
		"deleted": deleted,
	})
}

func (p *Provider) exists(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	return success(map[string]interface{}{
		"list":   name,
		"exists": p.registry.HasList(name),
	})
}

func (p *Provider) add(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	path, err := p.pathParam(params)
	if err != nil {
		return failure(err.Error())
	}

	autoCreate := true
	if a, ok := params["auto_create"].(bool); ok {
		autoCreate = a
	}

	index, err := p.registry.AddEntry(name, path, autoCreate)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":  name,
		"path":  path,
		"index": index,
	})
}

func (p *Provider) get(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	index, ok := params["index"].(float64)
	if !ok {
		return failure("index parameter required")
	}

	path, err := p.registry.EntryAt(name, int(index))
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":  name,
		"index": int(index),
		"path":  path,
	})
}

func (p *Provider) remove(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path parameter required")
	}

	if err := p.registry.RemoveEntry(name, path); err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":    name,
		"path":    path,
		"removed": true,
	})
}

func (p *Provider) removeAt(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	index, ok := params["index"].(float64)
	if !ok {
		return failure("index parameter required")
	}

	if err := p.registry.RemoveEntryAt(name, int(index)); err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":    name,
		"index":   int(index),
		"removed": true,
	})
}

func (p *Provider) find(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path parameter required")
	}

	index, err := p.registry.FindEntry(name, path)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":  name,
		"path":  path,
		"index": index,
		"found": index != filelist.NotFound,
	})
}

func (p *Provider) entries(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["list"].(string)
	if !ok || name == "" {
		return failure("list parameter required")
	}

	entries, err := p.registry.Entries(name)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"list":    name,
		"entries": entries,
		"count":   len(entries),
	})
}

func (p *Provider) lists() (*types.Result, error) {
	names := p.registry.ListNames()

	return success(map[string]interface{}{
		"lists": names,
		"count": len(names),
	})
}

func (p *Provider) stats() (*types.Result, error) {
	stats := p.registry.Stats()

	return success(map[string]interface{}{
		"total_lists":   stats.TotalLists,
		"total_entries": stats.TotalEntries,
	})
}

// Stats returns registry statistics under the provider lock.
func (p *Provider) Stats() filelist.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.registry.Stats()
}

// Clear tears down the registry, releasing all lists. Called at host
// shutdown.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registry.Clear()
}

// pathParam extracts and validates a path parameter against the host's
// platform path-length ceiling.
func (p *Provider) pathParam(params map[string]interface{}) (string, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return "", errors.New("path parameter required")
	}
	if p.maxPathLen > 0 && len(path) > p.maxPathLen {
		return "", fmt.Errorf("path exceeds maximum length of %d", p.maxPathLen)
	}
	return path, nil
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    data,
	}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{
		Success: false,
		Error:   &errMsg,
	}, fmt.Errorf("%s", message)
}
