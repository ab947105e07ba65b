// Package payload provides the payload builders for a multi-platform push
// request body. Every builder emits a plain key/value mapping that matches
// the target service's field contract byte-for-byte and is ready for JSON
// serialization. All builders are pure: they read only their own fields,
// produce no side effects, and fail fast with an INVALID_ARGUMENT error
// before any partial payload is returned.
package payload

// Payload is a plain key/value mapping ready for JSON serialization.
// Absent fields are omitted entirely, never set to nil.
type Payload map[string]interface{}

// Has reports whether the payload contains the given key.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Clone returns a shallow copy of the payload.
func (p Payload) Clone() Payload {
	clone := make(Payload, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}
