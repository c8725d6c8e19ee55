// Package localstore is a small JSON-backed slot store standing in for
// browser local storage: independent string-keyed slots, each holding
// one JSON-serialized value, flushed to disk on every write.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Slot keys used by the storefront.
const (
	KeyCart     = "fashionworld_cart"
	KeyWishlist = "fashionworld_wishlist"
	KeyOrders   = "fashionworld_orders"
	KeyBanners  = "fashionworld_banners"
	KeySettings = "fashionworld_settings"
)

// Store holds the slots and the file they are persisted to.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store from path, creating an empty store if the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local store file %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse local store file %s: %w", path, err)
		}
	}
	return s, nil
}

// Get deserializes the slot into v. It returns false when the slot is
// absent, which is not an error.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode slot %s: %w", key, err)
	}
	return true, nil
}

// Put serializes v into the slot and writes the store through to disk.
func (s *Store) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	s.data[key] = raw
	return s.flush()
}

// Delete removes the slot. Deleting an absent slot is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush writes the whole store to disk. Caller must hold the lock.
func (s *Store) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write local store file %s: %w", s.path, err)
	}
	return nil
}
