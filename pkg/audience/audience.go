// Package audience provides the audience selector for a push request: a
// two-case value that is either every registered device ("all") or a
// mapping of named selector fragments (tags, aliases, registration ids,
// segments, A/B test groups) merged together.
package audience

import (
	"encoding/json"

	"github.com/kart-io/pushkit/pkg/errors"
)

// Selector keys accepted by the target service.
const (
	KeyTag            = "tag"
	KeyTagAnd         = "tag_and"
	KeyTagNot         = "tag_not"
	KeyAlias          = "alias"
	KeyRegistrationID = "registration_id"
	KeySegment        = "segment"
	KeyAbtest         = "abtest"
)

var validKeys = map[string]bool{
	KeyTag:            true,
	KeyTagAnd:         true,
	KeyTagNot:         true,
	KeyAlias:          true,
	KeyRegistrationID: true,
	KeySegment:        true,
	KeyAbtest:         true,
}

// Fragment is a single named selector: one key and its payload.
type Fragment struct {
	key   string
	value interface{}
}

// Tag matches devices carrying any of the given tags.
func Tag(values ...string) Fragment {
	return Fragment{key: KeyTag, value: values}
}

// TagAnd matches devices carrying all of the given tags.
func TagAnd(values ...string) Fragment {
	return Fragment{key: KeyTagAnd, value: values}
}

// TagNot matches devices carrying none of the given tags.
func TagNot(values ...string) Fragment {
	return Fragment{key: KeyTagNot, value: values}
}

// Alias matches devices registered under any of the given aliases.
func Alias(values ...string) Fragment {
	return Fragment{key: KeyAlias, value: values}
}

// RegistrationID matches the devices with the given registration ids.
func RegistrationID(values ...string) Fragment {
	return Fragment{key: KeyRegistrationID, value: values}
}

// Segment matches the devices in the given user segments.
func Segment(values ...string) Fragment {
	return Fragment{key: KeySegment, value: values}
}

// Abtest matches the devices in the given A/B test groups.
func Abtest(values ...string) Fragment {
	return Fragment{key: KeyAbtest, value: values}
}

// Selector builds a fragment from a raw key and payload. The key is
// validated when the fragments are merged by New.
func Selector(key string, value interface{}) Fragment {
	return Fragment{key: key, value: value}
}

// Audience is a two-case selector: either every registered device ("all")
// or a merged mapping of selector fragments.
type Audience struct {
	all       bool
	selectors map[string]interface{}
}

// All targets every registered device.
var All = Audience{all: true}

// New merges the given fragments into one audience. Every fragment key
// must belong to the fixed selector set or the call fails with an
// INVALID_AUDIENCE error. When two fragments share a key, the later one
// wins; this mirrors the service contract and is not an error.
func New(fragments ...Fragment) (Audience, error) {
	selectors := make(map[string]interface{}, len(fragments))
	for _, f := range fragments {
		if !validKeys[f.key] {
			return Audience{}, errors.Newf(errors.CodeInvalidAudience, "invalid audience selector '%s'", f.key)
		}
		selectors[f.key] = f.value
	}
	return Audience{selectors: selectors}, nil
}

// IsAll reports whether the selector is the wildcard.
func (a Audience) IsAll() bool {
	return a.all
}

// Selectors returns the merged selector mapping; nil for the wildcard.
func (a Audience) Selectors() map[string]interface{} {
	return a.selectors
}

// Value returns the wire value: the literal "all" or the selector mapping.
func (a Audience) Value() interface{} {
	if a.all {
		return "all"
	}
	return a.selectors
}

// MarshalJSON emits the wire value.
func (a Audience) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}
