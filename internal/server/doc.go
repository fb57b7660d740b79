// Package server wires configuration, logging, metrics, the safety
// classifier, service providers, and the HTTP/WebSocket API into a
// runnable backend instance.
package server
