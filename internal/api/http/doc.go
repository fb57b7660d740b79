// Package http provides REST handlers for the backend API.
//
// Endpoints:
//   - GET  /          - Liveness and version
//   - GET  /health    - Detailed health with registry stats
//   - GET  /services  - List registered services, optional ?category=
//   - POST /services/execute - Execute a service tool
//   - POST /safety/validate  - Classify a path for deletion safety
package http
