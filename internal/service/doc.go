// Package service provides the service registry for provider management.
//
// The registry maintains a catalog of the backend's service providers and
// dispatches UI command requests to their tools.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(safetyProvider)
//	result, err := registry.Execute(ctx, "safety.validate", params, appCtx)
package service
