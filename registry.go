package csvline

import (
	"reflect"
	"sync"
)

// registryKey combines struct type and dialect for cache lookup.
type registryKey struct {
	typ     reflect.Type
	dialect LineCodec
}

var (
	registry   = make(map[registryKey]*Processor)
	registryMu sync.RWMutex
)

// Use returns a cached processor for T or builds a new one.
// Processors are cached by type and dialect, so codecs built with the same
// options share an entry. A nil codec selects the default dialect.
func Use[T any](codec *LineCodec) (*Processor, error) {
	if codec == nil {
		codec = Default()
	}
	key := registryKey{typ: reflect.TypeFor[T](), dialect: *codec}

	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	p, err := NewProcessorFor[T](codec)
	if err != nil {
		return nil, err
	}
	registry[key] = p
	return p, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*Processor)
}
