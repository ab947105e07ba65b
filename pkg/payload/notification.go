package payload

import (
	"github.com/kart-io/pushkit/pkg/errors"
)

// NotificationBuilder assembles the top-level "notification" payload from a
// plain alert text and optional pre-built platform overrides.
type NotificationBuilder struct {
	alert    string
	alertSet bool
	ios      Payload
	android  Payload
	winphone Payload
}

// NewNotification creates a new notification builder.
func NewNotification() *NotificationBuilder {
	return &NotificationBuilder{}
}

// Alert sets the simple text alert, applicable for all platforms.
func (b *NotificationBuilder) Alert(alert string) *NotificationBuilder {
	b.alert = alert
	b.alertSet = true
	return b
}

// IOS sets the iOS platform override, as built by IOSBuilder.
func (b *NotificationBuilder) IOS(p Payload) *NotificationBuilder {
	b.ios = p
	return b
}

// Android sets the Android platform override, as built by AndroidBuilder.
func (b *NotificationBuilder) Android(p Payload) *NotificationBuilder {
	b.android = p
	return b
}

// WinPhone sets the MPNS platform override, as built by WinPhoneBuilder.
func (b *NotificationBuilder) WinPhone(p Payload) *NotificationBuilder {
	b.winphone = p
	return b
}

// Build assembles the notification payload. Only fields that were supplied
// appear in the result. An empty notification is meaningless to the target
// service and fails with ErrEmptyNotification.
func (b *NotificationBuilder) Build() (Payload, error) {
	p := Payload{}
	if b.alertSet {
		p["alert"] = b.alert
	}
	if b.ios != nil {
		p["ios"] = b.ios
	}
	if b.android != nil {
		p["android"] = b.android
	}
	if b.winphone != nil {
		p["winphone"] = b.winphone
	}
	if len(p) == 0 {
		return nil, errors.ErrEmptyNotification
	}
	return p, nil
}
