package payload

import (
	"regexp"

	"github.com/kart-io/pushkit/pkg/errors"
)

// Valid autobadge values: auto, +N, -N
var validAutoBadge = regexp.MustCompile(`^(auto|[+-][0-9]+)$`)

// DefaultSound is the sound used when none is supplied and sound is not disabled.
const DefaultSound = "default"

// defaultBadge is the badge used when the caller neither overrides nor clears it.
const defaultBadge = "+1"

// IOSBuilder builds the APNS-specific platform override payload.
//
// Defaults follow the service contract: badge is "+1" (an autobadge
// increment) and sound is "default" unless DisableSound is called for a
// silent push.
type IOSBuilder struct {
	alert            interface{}
	alertSet         bool
	badge            interface{}
	badgeCleared     bool
	sound            string
	soundSet         bool
	soundDisabled    bool
	contentAvailable bool
	mutableContent   bool
	category         string
	extras           map[string]interface{}
	extrasSet        bool
}

// NewIOS creates a new iOS override builder.
func NewIOS() *IOSBuilder {
	return &IOSBuilder{badge: defaultBadge}
}

// Alert sets the iOS format alert, either a string or a map.
func (b *IOSBuilder) Alert(alert interface{}) *IOSBuilder {
	b.alert = alert
	b.alertSet = true
	return b
}

// Badge sets an integer badge value or an autobadge string
// ("auto", "+N" or "-N").
func (b *IOSBuilder) Badge(badge interface{}) *IOSBuilder {
	b.badge = badge
	b.badgeCleared = false
	return b
}

// NoBadge omits the badge field entirely, leaving the device badge untouched.
func (b *IOSBuilder) NoBadge() *IOSBuilder {
	b.badgeCleared = true
	return b
}

// Sound sets the sound file to play on delivery.
func (b *IOSBuilder) Sound(sound string) *IOSBuilder {
	b.sound = sound
	b.soundSet = true
	return b
}

// DisableSound omits the sound field regardless of any supplied value,
// producing a silent push.
func (b *IOSBuilder) DisableSound() *IOSBuilder {
	b.soundDisabled = true
	return b
}

// ContentAvailable passes the content-available command on to the device.
func (b *IOSBuilder) ContentAvailable() *IOSBuilder {
	b.contentAvailable = true
	return b
}

// MutableContent marks the push as modifiable by a notification service extension.
func (b *IOSBuilder) MutableContent() *IOSBuilder {
	b.mutableContent = true
	return b
}

// Category sets the APNS category.
func (b *IOSBuilder) Category(category string) *IOSBuilder {
	b.category = category
	return b
}

// Extras sets the key/value pairs included in the push payload sent to the device.
func (b *IOSBuilder) Extras(extras map[string]interface{}) *IOSBuilder {
	b.extras = extras
	b.extrasSet = true
	return b
}

// Build validates the inputs and assembles the iOS override payload.
// content-available and mutable-content encode as the integer 1 when set
// and are omitted otherwise; the keys keep their wire-contract hyphens.
func (b *IOSBuilder) Build() (Payload, error) {
	p := Payload{}
	if b.alertSet {
		switch b.alert.(type) {
		case string, map[string]interface{}, Payload:
		default:
			return nil, errors.ErrInvalidIOSAlert
		}
		p["alert"] = b.alert
	}
	if !b.badgeCleared {
		switch badge := b.badge.(type) {
		case int:
			p["badge"] = badge
		case string:
			if !validAutoBadge.MatchString(badge) {
				return nil, errors.ErrInvalidAutoBadge
			}
			p["badge"] = badge
		default:
			return nil, errors.ErrInvalidBadge
		}
	}
	if !b.soundDisabled {
		if b.soundSet {
			p["sound"] = b.sound
		} else {
			p["sound"] = DefaultSound
		}
	}
	if b.contentAvailable {
		p["content-available"] = 1
	}
	if b.mutableContent {
		p["mutable-content"] = 1
	}
	if b.category != "" {
		p["category"] = b.category
	}
	if b.extrasSet {
		p["extras"] = b.extras
	}
	return p, nil
}
