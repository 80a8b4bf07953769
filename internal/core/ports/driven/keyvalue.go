package driven

// KeyValueStore is the persistent string key-value store backing user
// settings and the viewing history. Operations are synchronous and each
// key is updated atomically. Concurrent writers to one key follow
// last-write-wins.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
