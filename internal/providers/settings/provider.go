package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/diskwise/backend/internal/shared/types"
)

// Provider implements settings management with TOML persistence
type Provider struct {
	path   string
	mu     sync.RWMutex
	values map[string]Setting
}

// NewProvider creates a settings provider persisting to path. Existing
// file contents overlay the defaults; unknown keys are dropped.
func NewProvider(path string) *Provider {
	p := &Provider{
		path:   path,
		values: make(map[string]Setting),
	}
	for _, s := range defaults() {
		s.Value = s.Default
		p.values[s.Key] = s
	}
	p.load()
	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "settings",
		Name:        "Settings Service",
		Description: "Application settings and configuration persistence",
		Category:    types.CategorySettings,
		Capabilities: []string{
			"get",
			"set",
			"list",
			"reset",
			"export",
			"import",
		},
		Tools: []types.Tool{
			{
				ID:          "settings.get",
				Name:        "Get Setting",
				Description: "Get a configuration setting value",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Setting key", Required: true},
				},
				Returns: "Setting",
			},
			{
				ID:          "settings.set",
				Name:        "Set Setting",
				Description: "Set a configuration setting value",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Setting key", Required: true},
					{Name: "value", Type: "any", Description: "Setting value", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "settings.list",
				Name:        "List Settings",
				Description: "List all settings optionally filtered by category",
				Parameters: []types.Parameter{
					{Name: "category", Type: "string", Description: "Category filter (optional)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "settings.reset",
				Name:        "Reset Setting",
				Description: "Reset a setting to its default value",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Setting key", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "settings.export",
				Name:        "Export Settings",
				Description: "Export all settings as a flat map",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "settings.import",
				Name:        "Import Settings",
				Description: "Import settings from a flat map",
				Parameters: []types.Parameter{
					{Name: "settings", Type: "object", Description: "Settings to import", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute runs a settings operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "settings.get":
		return p.get(params)
	case "settings.set":
		return p.set(params)
	case "settings.list":
		return p.list(params)
	case "settings.reset":
		return p.reset(params)
	case "settings.export":
		return p.export()
	case "settings.import":
		return p.importSettings(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) get(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key required")
	}

	p.mu.RLock()
	setting, found := p.values[key]
	p.mu.RUnlock()

	if !found {
		return failure(fmt.Sprintf("unknown setting: %s", key))
	}

	return success(map[string]interface{}{
		"key":         setting.Key,
		"value":       setting.Value,
		"type":        setting.Type,
		"category":    setting.Category,
		"description": setting.Description,
		"default":     setting.Default,
	})
}

func (p *Provider) set(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key required")
	}
	value, present := params["value"]
	if !present {
		return failure("value required")
	}

	p.mu.Lock()
	setting, found := p.values[key]
	if !found {
		p.mu.Unlock()
		return failure(fmt.Sprintf("unknown setting: %s", key))
	}
	if !typeOK(setting.Type, value) {
		p.mu.Unlock()
		return failure(fmt.Sprintf("setting %s expects %s", key, setting.Type))
	}
	setting.Value = value
	p.values[key] = setting
	err := p.saveLocked()
	p.mu.Unlock()

	if err != nil {
		return failure(fmt.Sprintf("persist failed: %v", err))
	}
	return success(map[string]interface{}{"updated": true})
}

func (p *Provider) list(params map[string]interface{}) (*types.Result, error) {
	category, _ := params["category"].(string)

	p.mu.RLock()
	settings := make([]Setting, 0, len(p.values))
	for _, s := range p.values {
		if category == "" || s.Category == category {
			settings = append(settings, s)
		}
	}
	p.mu.RUnlock()

	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })

	return success(map[string]interface{}{
		"settings": settings,
		"count":    len(settings),
	})
}

func (p *Provider) reset(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key required")
	}

	p.mu.Lock()
	setting, found := p.values[key]
	if !found {
		p.mu.Unlock()
		return failure(fmt.Sprintf("unknown setting: %s", key))
	}
	setting.Value = setting.Default
	p.values[key] = setting
	err := p.saveLocked()
	p.mu.Unlock()

	if err != nil {
		return failure(fmt.Sprintf("persist failed: %v", err))
	}
	return success(map[string]interface{}{"reset": true})
}

func (p *Provider) export() (*types.Result, error) {
	p.mu.RLock()
	flat := make(map[string]interface{}, len(p.values))
	for key, s := range p.values {
		flat[key] = s.Value
	}
	p.mu.RUnlock()

	return success(map[string]interface{}{"settings": flat})
}

func (p *Provider) importSettings(params map[string]interface{}) (*types.Result, error) {
	incoming, ok := params["settings"].(map[string]interface{})
	if !ok {
		return failure("settings object required")
	}

	p.mu.Lock()
	imported := 0
	for key, value := range incoming {
		setting, found := p.values[key]
		if !found || !typeOK(setting.Type, value) {
			continue // unknown and ill-typed keys are skipped, not fatal
		}
		setting.Value = value
		p.values[key] = setting
		imported++
	}
	err := p.saveLocked()
	p.mu.Unlock()

	if err != nil {
		return failure(fmt.Sprintf("persist failed: %v", err))
	}
	return success(map[string]interface{}{"imported": imported})
}

// load overlays persisted values onto the defaults. A missing or broken
// file leaves the defaults intact.
func (p *Provider) load() {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return
	}

	var nested map[string]map[string]interface{}
	if err := toml.Unmarshal(data, &nested); err != nil {
		return
	}

	for category, entries := range nested {
		for name, value := range entries {
			key := category + "." + name
			setting, found := p.values[key]
			if !found || !typeOK(setting.Type, value) {
				continue
			}
			setting.Value = value
			p.values[key] = setting
		}
	}
}

// saveLocked writes the settings file; callers hold p.mu.
func (p *Provider) saveLocked() error {
	nested := make(map[string]map[string]interface{})
	for key, s := range p.values {
		name := strings.TrimPrefix(key, s.Category+".")
		if nested[s.Category] == nil {
			nested[s.Category] = make(map[string]interface{})
		}
		nested[s.Category][name] = s.Value
	}

	data, err := toml.Marshal(nested)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
