package payload

// MessageBuilder builds the in-app (inner-connection) message payload, a
// non-notification payload kind delivered straight to the application.
type MessageBuilder struct {
	msgContent string
	fields     Payload
}

// NewMessage creates a new in-app message builder with the required content.
func NewMessage(msgContent string) *MessageBuilder {
	return &MessageBuilder{
		msgContent: msgContent,
		fields:     Payload{},
	}
}

// Title sets the message title.
func (b *MessageBuilder) Title(title string) *MessageBuilder {
	b.fields["title"] = title
	return b
}

// ContentType sets the MIME type of the message body.
func (b *MessageBuilder) ContentType(contentType string) *MessageBuilder {
	b.fields["content_type"] = contentType
	return b
}

// Extras sets the key/value pairs included alongside the message body.
func (b *MessageBuilder) Extras(extras map[string]interface{}) *MessageBuilder {
	b.fields["extras"] = extras
	return b
}

// Build assembles the message payload; msg_content is always present.
func (b *MessageBuilder) Build() Payload {
	p := b.fields.Clone()
	p["msg_content"] = b.msgContent
	return p
}

// SMSMessage builds the SMS fallback payload. Both fields are required;
// delayTime is the number of seconds to wait before falling back, zero
// meaning send immediately. Value ranges are left to the target service.
func SMSMessage(content string, delayTime int) Payload {
	return Payload{
		"content":    content,
		"delay_time": delayTime,
	}
}

// CID builds the channel identifier payload used to deduplicate pushes.
func CID(cid string) Payload {
	return Payload{"cid": cid}
}
