package pushkit

import (
	"github.com/kart-io/pushkit/pkg/audience"
	"github.com/kart-io/pushkit/pkg/errors"
	"github.com/kart-io/pushkit/pkg/logger"
	"github.com/kart-io/pushkit/pkg/payload"
	"github.com/kart-io/pushkit/pkg/platform"
)

// PushBuilder composes validated payload pieces into one push request
// mapping. Each piece is built independently by its own builder; the
// PushBuilder only places them under their top-level keys and enforces
// the request-level presence rules.
type PushBuilder struct {
	logger       logger.Logger
	platform     platform.Platforms
	platformSet  bool
	audience     audience.Audience
	audienceSet  bool
	notification payload.Payload
	message      payload.Payload
	smsMessage   payload.Payload
	cid          string
	options      map[string]interface{}
	optionsSet   bool
}

// NewPush creates a new push request builder.
func NewPush() *PushBuilder {
	return &PushBuilder{logger: logger.Discard}
}

// WithLogger sets the logger used while composing the request.
func (b *PushBuilder) WithLogger(l logger.Logger) *PushBuilder {
	b.logger = l
	return b
}

// Platform sets the target platform selector.
func (b *PushBuilder) Platform(p platform.Platforms) *PushBuilder {
	b.platform = p
	b.platformSet = true
	return b
}

// Audience sets the audience selector.
func (b *PushBuilder) Audience(a audience.Audience) *PushBuilder {
	b.audience = a
	b.audienceSet = true
	return b
}

// Notification sets the notification payload, as built by
// payload.NotificationBuilder.
func (b *PushBuilder) Notification(n payload.Payload) *PushBuilder {
	b.notification = n
	return b
}

// Message sets the in-app message payload, as built by payload.MessageBuilder.
func (b *PushBuilder) Message(m payload.Payload) *PushBuilder {
	b.message = m
	return b
}

// SMSMessage sets the SMS fallback payload, as built by payload.SMSMessage.
func (b *PushBuilder) SMSMessage(m payload.Payload) *PushBuilder {
	b.smsMessage = m
	return b
}

// CID sets the channel identifier used to deduplicate pushes.
func (b *PushBuilder) CID(cid string) *PushBuilder {
	b.cid = cid
	return b
}

// Options sets the options mapping, wrapped under the "options" key.
func (b *PushBuilder) Options(options map[string]interface{}) *PushBuilder {
	b.options = options
	b.optionsSet = true
	return b
}

// Build validates the composition and assembles the push request mapping.
// A push must target a platform and an audience and carry at least one of
// a notification or an in-app message; anything less is rejected by the
// target service, so it fails here first.
func (b *PushBuilder) Build() (payload.Payload, error) {
	if !b.platformSet {
		return nil, errors.ErrMissingPlatform
	}
	if !b.audienceSet {
		return nil, errors.ErrMissingAudience
	}
	if b.notification == nil && b.message == nil {
		return nil, errors.ErrEmptyPush
	}

	p := payload.Payload{
		"platform": b.platform.Value(),
		"audience": b.audience.Value(),
	}
	if b.notification != nil {
		p["notification"] = b.notification
	}
	if b.message != nil {
		p["message"] = b.message
	}
	if b.smsMessage != nil {
		p["sms_message"] = b.smsMessage
	}
	if b.cid != "" {
		p["cid"] = b.cid
	}
	if b.optionsSet {
		for k, v := range payload.Options(b.options) {
			p[k] = v
		}
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	b.logger.Debug("composed push request", "keys", keys)

	return p, nil
}
