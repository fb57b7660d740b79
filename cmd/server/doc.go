// Package main is the entry point for the DiskWise backend server.
//
// This application backs the DiskWise desktop cleanup app: the webview
// frontend talks to it over REST and a WebSocket stream, and every
// destructive candidate path is classified for safety before the
// frontend may act on it.
//
// The server provides:
//   - Path-safety classification (POST /safety/validate)
//   - Service provider registry with tool execution
//   - Directory scanning and filesystem inspection
//   - Settings persistence and notification push
//   - Prometheus metrics and rate limiting
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
