// Package platform provides the target-platform selector for a push request.
package platform

import (
	"encoding/json"

	"github.com/kart-io/pushkit/pkg/errors"
)

// Platform names accepted by the target service.
const (
	NameIOS      = "ios"
	NameAndroid  = "android"
	NameWinPhone = "winphone"
	nameAll      = "all"
)

// Platforms is a two-case selector: either every platform ("all") or an
// explicit ordered list of platform names. The zero value is not valid;
// use All or New.
type Platforms struct {
	all   bool
	names []string
}

// All targets every platform.
var All = Platforms{all: true}

// New validates the given platform names and returns the selector.
// A single "all" collapses to the wildcard. Order is preserved and
// duplicates are kept; the first invalid name fails with an
// INVALID_PLATFORM error naming it.
func New(names ...string) (Platforms, error) {
	if len(names) == 1 && names[0] == nameAll {
		return All, nil
	}
	for _, name := range names {
		switch name {
		case NameIOS, NameAndroid, NameWinPhone:
		default:
			return Platforms{}, errors.Newf(errors.CodeInvalidPlatform, "invalid platform '%s'", name)
		}
	}
	list := make([]string, len(names))
	copy(list, names)
	return Platforms{names: list}, nil
}

// IsAll reports whether the selector is the wildcard.
func (p Platforms) IsAll() bool {
	return p.all
}

// Names returns the selected platform names; nil for the wildcard.
func (p Platforms) Names() []string {
	return p.names
}

// Value returns the wire value: the literal "all" or the name list.
func (p Platforms) Value() interface{} {
	if p.all {
		return nameAll
	}
	return p.names
}

// MarshalJSON emits the wire value.
func (p Platforms) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value())
}
