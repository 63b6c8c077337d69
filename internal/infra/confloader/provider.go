package confloader

import (
	"errors"

	"github.com/knadh/koanf/maps"
)

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("confloader: map provider has no byte form")

// mapProvider feeds an in-memory map to koanf. Keys may be nested maps or
// dotted paths ("server.http.addr"); both end up in the same tree.
type mapProvider struct {
	data  map[string]any
	delim string
}

// ReadBytes returns ErrReadBytesNotSupported.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns a nested copy of the map.
func (m mapProvider) Read() (map[string]any, error) {
	cp := make(map[string]any, len(m.data))
	for k, v := range m.data {
		cp[k] = v
	}
	return maps.Unflatten(cp, m.delim), nil
}
