package payload

// AndroidBuilder builds the Android-specific platform override payload.
//
// alert is required and always emitted; an empty alert string keeps the
// push out of the notification bar. Every optional field is emitted if and
// only if its setter was called, so zero, false, and empty-string values
// survive into the payload.
type AndroidBuilder struct {
	alert  string
	fields Payload
}

// NewAndroid creates a new Android override builder with the required alert text.
func NewAndroid(alert string) *AndroidBuilder {
	return &AndroidBuilder{
		alert:  alert,
		fields: Payload{},
	}
}

// Title sets the notification title.
func (b *AndroidBuilder) Title(title string) *AndroidBuilder {
	b.fields["title"] = title
	return b
}

// BuilderID selects the notification layout registered in the client.
func (b *AndroidBuilder) BuilderID(id int) *AndroidBuilder {
	b.fields["builder_id"] = id
	return b
}

// Priority sets the notification priority.
func (b *AndroidBuilder) Priority(priority int) *AndroidBuilder {
	b.fields["priority"] = priority
	return b
}

// Category sets the notification category.
func (b *AndroidBuilder) Category(category string) *AndroidBuilder {
	b.fields["category"] = category
	return b
}

// Style selects the big text / inbox / big picture style.
func (b *AndroidBuilder) Style(style int) *AndroidBuilder {
	b.fields["style"] = style
	return b
}

// AlertType sets the ringtone/vibration/breath-light mask.
func (b *AndroidBuilder) AlertType(alertType int) *AndroidBuilder {
	b.fields["alert_type"] = alertType
	return b
}

// BigText sets the big text style content.
func (b *AndroidBuilder) BigText(bigText string) *AndroidBuilder {
	b.fields["big_text"] = bigText
	return b
}

// Inbox sets the inbox style content.
func (b *AndroidBuilder) Inbox(inbox interface{}) *AndroidBuilder {
	b.fields["inbox"] = inbox
	return b
}

// BigPicPath sets the big picture style image path.
func (b *AndroidBuilder) BigPicPath(path string) *AndroidBuilder {
	b.fields["big_pic_path"] = path
	return b
}

// URIActivity sets the activity opened when the notification is clicked.
func (b *AndroidBuilder) URIActivity(uri string) *AndroidBuilder {
	b.fields["uri_activity"] = uri
	return b
}

// Extras sets the key/value pairs included in the push payload sent to the device.
func (b *AndroidBuilder) Extras(extras map[string]interface{}) *AndroidBuilder {
	b.fields["extras"] = extras
	return b
}

// Build assembles the Android override payload. There is no cross-field
// validation, so Build cannot fail.
func (b *AndroidBuilder) Build() Payload {
	p := b.fields.Clone()
	p["alert"] = b.alert
	return p
}
