// Package safety exposes the path-safety classifier as a service
// provider. Decision logic lives in internal/safety; this package only
// adapts verdicts onto the tool interface.
package safety

import (
	"context"
	"fmt"

	"github.com/diskwise/backend/internal/safety"
	"github.com/diskwise/backend/internal/shared/types"
)

// Provider implements path-safety classification tools
type Provider struct {
	classifier *safety.Classifier
}

// NewProvider creates a safety provider around a classifier
func NewProvider(classifier *safety.Classifier) *Provider {
	return &Provider{classifier: classifier}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "safety",
		Name:        "Path Safety Service",
		Description: "Classifies directory paths by cleanup risk",
		Category:    types.CategorySafety,
		Capabilities: []string{
			"validate",
			"risk_levels",
			"protected_paths",
		},
		Tools: []types.Tool{
			{
				ID:          "safety.validate",
				Name:        "Validate Path",
				Description: "Classify a directory path and return a safety verdict",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
				},
				Returns: "Verdict",
			},
			{
				ID:          "safety.levels",
				Name:        "Risk Levels",
				Description: "List the ordered risk level scale",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "safety.protected",
				Name:        "Protected Directories",
				Description: "List the system directory deny-list per platform",
				Parameters: []types.Parameter{
					{Name: "platform", Type: "string", Description: "windows|macos|linux|other (default: current)", Required: false},
				},
				Returns: "array",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "Verdict",
				Fields: map[string]string{
					"is_safe":         "boolean",
					"risk_level":      "string",
					"warnings":        "array",
					"blocked_reasons": "array",
				},
			},
		},
	}
}

// Execute runs a safety operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "safety.validate":
		return p.validate(params)
	case "safety.levels":
		return p.levels()
	case "safety.protected":
		return p.protected(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) validate(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path required")
	}

	verdict := p.classifier.Classify(path)

	return success(map[string]interface{}{
		"path":            path,
		"is_safe":         verdict.IsSafe,
		"risk_level":      verdict.RiskLevel.String(),
		"warnings":        verdict.Warnings,
		"blocked_reasons": verdict.BlockedReasons,
	})
}

func (p *Provider) levels() (*types.Result, error) {
	scale := []safety.RiskLevel{
		safety.RiskSafe,
		safety.RiskLow,
		safety.RiskMedium,
		safety.RiskHigh,
		safety.RiskCritical,
	}
	names := make([]string, len(scale))
	for i, level := range scale {
		names[i] = level.String()
	}

	return success(map[string]interface{}{"levels": names})
}

func (p *Provider) protected(params map[string]interface{}) (*types.Result, error) {
	platform := safety.CurrentPlatform()
	if raw, ok := params["platform"].(string); ok && raw != "" {
		switch safety.Platform(raw) {
		case safety.Windows, safety.MacOS, safety.Linux, safety.Other:
			platform = safety.Platform(raw)
		default:
			return failure(fmt.Sprintf("unknown platform: %s", raw))
		}
	}

	return success(map[string]interface{}{
		"platform":    string(platform),
		"directories": safety.ProtectedDirectories(platform),
	})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
