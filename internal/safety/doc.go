// Package safety implements the path-safety classifier for disk-cleanup
// operations.
//
// Given a directory path, the classifier decides whether destructive
// operations against it are safe and at what risk level, producing
// structured warnings and block reasons for the UI layer.
//
// The classifier is composed of independent rules evaluated in a fixed
// order:
//   - Existence and type probes (blocking, Critical)
//   - System directory protection (blocking, High)
//   - Path traversal detection (blocking, Critical)
//   - User sensitive directories (warning)
//   - Application directories (warning)
//   - Depth, character and length checks (warnings)
//
// Design Properties:
//   - Total: Classify never returns an error; probe failures degrade to
//     an unsafe Critical verdict
//   - Deterministic: a pure function of (path, platform, probe facts, home)
//   - Injectable: filesystem probe and home directory are dependencies,
//     so rule logic is testable without touching a real filesystem
//   - Concurrent-safe: no shared mutable state, rule tables are constant
//
// Example Usage:
//
//	classifier := safety.New()
//	verdict := classifier.Classify("/home/alice/Downloads")
//	if !verdict.IsSafe {
//		// refuse the operation, surface verdict.BlockedReasons
//	}
package safety
