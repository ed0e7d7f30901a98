package ports

// KeyValueStore is the durable storage used for access history. Values
// persist across sessions. Read failures degrade to absence; callers treat
// missing or corrupt data as empty, never as fatal.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type KeyValueStore interface {
	// Get returns the value stored under key, and whether one exists.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key, if any.
	Delete(key string) error
}
