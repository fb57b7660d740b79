// Package system provides host and runtime information to the UI shell.
package system

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/diskwise/backend/internal/shared/types"
)

// Provider implements system information and utilities
type Provider struct {
	startTime time.Time
}

// NewProvider creates a system provider
func NewProvider() *Provider {
	return &Provider{startTime: time.Now()}
}

// Definition returns service metadata
func (s *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Host, platform and runtime information",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"info",
			"platform",
		},
		Tools: []types.Tool{
			{
				ID:          "system.info",
				Name:        "System Info",
				Description: "Get host and runtime information",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.platform",
				Name:        "Platform Info",
				Description: "Get platform identity and UI capability flags",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.time",
				Name:        "Current Time",
				Description: "Get current server time",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.ping",
				Name:        "Ping",
				Description: "Test service availability",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a system operation
func (s *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "system.info":
		return s.info()
	case "system.platform":
		return s.platform()
	case "system.time":
		return s.currentTime()
	case "system.ping":
		return s.ping()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (s *Provider) info() (*types.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return success(map[string]interface{}{
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"hostname":       hostname,
		"go_version":     runtime.Version(),
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_alloc":   m.Alloc / 1024 / 1024,      // MB
		"memory_total":   m.TotalAlloc / 1024 / 1024, // MB
		"memory_sys":     m.Sys / 1024 / 1024,        // MB
		"uptime_seconds": time.Since(s.startTime).Seconds(),
	})
}

func (s *Provider) platform() (*types.Result, error) {
	desktop := isDesktop()

	return success(map[string]interface{}{
		"os_type":                runtime.GOOS,
		"arch":                   runtime.GOARCH,
		"is_desktop":             desktop,
		"supports_notifications": desktop,
		"supports_file_dialogs":  desktop,
		"supports_system_theme":  desktop,
	})
}

// isDesktop reports whether the host OS runs a desktop shell capable of
// dialogs and notifications.
func isDesktop() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "linux":
		return true
	default:
		return false
	}
}

func (s *Provider) currentTime() (*types.Result, error) {
	now := time.Now()
	return success(map[string]interface{}{
		"timestamp": now.Unix(),
		"iso":       now.Format(time.RFC3339),
		"unix_ms":   now.UnixMilli(),
	})
}

func (s *Provider) ping() (*types.Result, error) {
	return success(map[string]interface{}{
		"pong":      true,
		"timestamp": time.Now().Unix(),
	})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
