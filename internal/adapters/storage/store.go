// Package storage provides the durable key/value blob store backing the
// leaderboard and settings. It mirrors browser local storage semantics:
// synchronous, best-effort, and never a source of errors for callers.
package storage

// Store is string-keyed read/write of a single JSON-serializable blob.
//
// All operations are best-effort. A full or unavailable backend makes
// Write a silent no-op and Read report absence; nothing propagates,
// because this is not safety-critical data.
type Store interface {
	// Read returns the previously written value, or ok=false if the key
	// was never written or the backend is unavailable.
	Read(key string) (value []byte, ok bool)

	// Write persists the value synchronously.
	Write(key string, value []byte)

	// Clear removes the stored value for key.
	Clear(key string)
}
