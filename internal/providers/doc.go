// Package providers implements the service provider system for the
// diskwise backend.
//
// Service providers expose backend capabilities to the desktop UI shell
// through a standardized tool-based interface.
//
// Available Providers:
//   - Safety: Path-safety classification for cleanup targets
//   - Filesystem: Directory access validation and bounded scans
//   - System: OS, platform and runtime information
//   - Notifications: Notification dispatch and history
//   - Settings: Application configuration persistence
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	p := safety.NewProvider(classifier)
//	result, err := p.Execute(ctx, "safety.validate", params, appCtx)
package providers
