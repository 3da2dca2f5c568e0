package moneyfmt

// Storage exposes read access to durable client-side storage.
type Storage interface {
	Item(key string) (string, bool)
}

// MapStorage is an in-memory Storage.
type MapStorage map[string]string

var _ Storage = MapStorage{}

// Item returns the value stored under key.
func (s MapStorage) Item(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s[key]
	return value, ok
}

// StorageFunc adapts a plain function to the Storage interface.
type StorageFunc func(key string) (string, bool)

// Item implements Storage.
func (fn StorageFunc) Item(key string) (string, bool) {
	return fn(key)
}
