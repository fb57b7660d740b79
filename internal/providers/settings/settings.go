// Package settings manages application configuration for the UI shell,
// persisted as a TOML file next to the backend's data directory.
package settings

// Setting represents a configuration setting
type Setting struct {
	Key         string      `json:"key"`
	Value       interface{} `json:"value"`
	Type        string      `json:"type"` // "string", "number", "boolean"
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Default     interface{} `json:"default"`
}

// defaults returns the full settings catalog with default values.
func defaults() []Setting {
	return []Setting{
		{
			Key:         "general.max_file_size",
			Type:        "number",
			Category:    "general",
			Description: "Largest file size considered for cleanup (bytes)",
			Default:     int64(1_000_000_000),
		},
		{
			Key:         "general.default_timeout_seconds",
			Type:        "number",
			Category:    "general",
			Description: "Default timeout for backend operations",
			Default:     int64(30),
		},
		{
			Key:         "appearance.theme",
			Type:        "string",
			Category:    "appearance",
			Description: "UI theme preference (light, dark, system)",
			Default:     "system",
		},
		{
			Key:         "notifications.enabled",
			Type:        "boolean",
			Category:    "notifications",
			Description: "Show desktop notifications",
			Default:     true,
		},
		{
			Key:         "analysis.batch_size",
			Type:        "number",
			Category:    "analysis",
			Description: "Files per analysis batch",
			Default:     int64(1000),
		},
		{
			Key:         "analysis.parallel",
			Type:        "boolean",
			Category:    "analysis",
			Description: "Process analysis batches in parallel",
			Default:     true,
		},
		{
			Key:         "analysis.max_concurrent_requests",
			Type:        "number",
			Category:    "analysis",
			Description: "Concurrent analysis requests",
			Default:     int64(5),
		},
		{
			Key:         "analysis.cache_ttl_seconds",
			Type:        "number",
			Category:    "analysis",
			Description: "Analysis cache entry lifetime",
			Default:     int64(3600),
		},
		{
			Key:         "security.allow_system_directories",
			Type:        "boolean",
			Category:    "security",
			Description: "Permit selecting system directories (classifier still blocks them)",
			Default:     false,
		},
		{
			Key:         "security.require_confirmation",
			Type:        "boolean",
			Category:    "security",
			Description: "Ask before destructive operations",
			Default:     true,
		},
		{
			Key:         "security.audit_trail",
			Type:        "boolean",
			Category:    "security",
			Description: "Record an audit trail of cleanup operations",
			Default:     true,
		},
		{
			Key:         "security.backup_before_delete",
			Type:        "boolean",
			Category:    "security",
			Description: "Move files to a backup area instead of deleting",
			Default:     true,
		},
	}
}

// typeOK reports whether value matches the declared setting type.
func typeOK(settingType string, value interface{}) bool {
	switch settingType {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number":
		switch value.(type) {
		case int, int64, float64:
			return true
		}
		return false
	default:
		return false
	}
}
