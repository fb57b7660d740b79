// Package filesystem provides directory inspection tools for the UI
// shell: access validation before a cleanup run and bounded scans for
// size and composition overviews.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diskwise/backend/internal/shared/types"
)

// writeProbeName is the scratch file used to test writability.
const writeProbeName = ".diskwise-write-test"

// Config bounds scan work so huge directories cannot stall the UI.
type Config struct {
	// MaxEntries caps the number of entries visited per scan.
	MaxEntries int
	// MimeSamples caps the number of files content-sniffed per scan.
	MimeSamples int
}

// DefaultConfig returns the scan bounds used when none are configured.
func DefaultConfig() Config {
	return Config{
		MaxEntries:  10000,
		MimeSamples: 200,
	}
}

// Provider implements directory inspection operations
type Provider struct {
	cfg Config
}

// NewProvider creates a filesystem provider
func NewProvider(cfg Config) *Provider {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultConfig().MaxEntries
	}
	if cfg.MimeSamples <= 0 {
		cfg.MimeSamples = DefaultConfig().MimeSamples
	}
	return &Provider{cfg: cfg}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "Directory access validation and bounded scans",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"validate_access",
			"scan",
			"home",
		},
		Tools: []types.Tool{
			{
				ID:          "filesystem.validate_access",
				Name:        "Validate Directory Access",
				Description: "Check a directory's readability, writability and rough size",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
				},
				Returns: "DirectoryInfo",
			},
			{
				ID:          "filesystem.scan",
				Name:        "Scan Directory",
				Description: "Recursively scan a directory with bounded depth and entry count",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "max_depth", Type: "number", Description: "Max depth (0=unlimited)", Required: false},
				},
				Returns: "ScanReport",
			},
			{
				ID:          "filesystem.home",
				Name:        "Home Directory",
				Description: "Get the current user's home directory",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "DirectoryInfo",
				Fields: map[string]string{
					"path":        "string",
					"name":        "string",
					"is_readable": "boolean",
					"is_writable": "boolean",
					"file_count":  "number",
					"total_size":  "number",
				},
			},
		},
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "filesystem.validate_access":
		return p.validateAccess(params)
	case "filesystem.scan":
		return p.scan(ctx, params)
	case "filesystem.home":
		return p.home()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) validateAccess(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return failure("Directory does not exist")
	}
	if !info.IsDir() {
		return failure("Path is not a directory")
	}

	name := filepath.Base(path)

	entries, err := os.ReadDir(path)
	readable := err == nil

	writable := p.probeWritable(path)

	var fileCount, totalSize int64
	if readable {
		for i, entry := range entries {
			if i >= p.cfg.MaxEntries {
				break
			}
			fileCount++
			if entry.IsDir() {
				continue
			}
			if fi, err := entry.Info(); err == nil {
				totalSize += fi.Size()
			}
		}
	}

	return success(map[string]interface{}{
		"path":        path,
		"name":        name,
		"is_readable": readable,
		"is_writable": writable,
		"file_count":  fileCount,
		"total_size":  totalSize,
	})
}

// probeWritable creates and removes a scratch file; some platforms
// report directory write bits that do not reflect effective access.
func (p *Provider) probeWritable(path string) bool {
	probe := filepath.Join(path, writeProbeName)
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (p *Provider) home() (*types.Result, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return failure("home directory unavailable")
	}
	return success(map[string]interface{}{"path": home})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
