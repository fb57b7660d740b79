// Package types provides shared data structures for the diskwise backend.
//
// This package defines the core value types used across all backend
// components, ensuring consistent data structures between providers,
// the dispatch registry, and the API surface.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - ValidateRequest: Path-safety validation
//   - WSMessage: WebSocket communication
package types
