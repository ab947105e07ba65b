package payload

import (
	"github.com/kart-io/pushkit/pkg/errors"
)

// noticeType is the tagged-variant selector for the MPNS notification kind.
type noticeType int

const (
	noticeNone noticeType = iota
	noticeAlert
	noticeTitle
	noticeOpenPage
)

func (t noticeType) key() string {
	switch t {
	case noticeAlert:
		return "alert"
	case noticeTitle:
		return "title"
	case noticeOpenPage:
		return "_open_page"
	default:
		return ""
	}
}

// WinPhoneBuilder builds the MPNS-specific platform override payload.
//
// Exactly one of Alert, Title, or OpenPage must be selected; the builder
// tracks the selection as a single tagged variant, and choosing a second
// kind makes Build fail. Extras is independent of the selection.
type WinPhoneBuilder struct {
	notice    noticeType
	value     string
	conflict  bool
	extras    map[string]interface{}
	extrasSet bool
}

// NewWinPhone creates a new WinPhone override builder.
func NewWinPhone() *WinPhoneBuilder {
	return &WinPhoneBuilder{}
}

func (b *WinPhoneBuilder) selectNotice(t noticeType, value string) *WinPhoneBuilder {
	if b.notice != noticeNone && b.notice != t {
		b.conflict = true
	}
	b.notice = t
	b.value = value
	return b
}

// Alert selects a toast notification with the given alert text.
func (b *WinPhoneBuilder) Alert(alert string) *WinPhoneBuilder {
	return b.selectNotice(noticeAlert, alert)
}

// Title selects a tile notification with the given title.
func (b *WinPhoneBuilder) Title(title string) *WinPhoneBuilder {
	return b.selectNotice(noticeTitle, title)
}

// OpenPage selects the page opened on tap, emitted under "_open_page".
func (b *WinPhoneBuilder) OpenPage(page string) *WinPhoneBuilder {
	return b.selectNotice(noticeOpenPage, page)
}

// Extras sets the key/value pairs included in the push payload sent to the device.
func (b *WinPhoneBuilder) Extras(extras map[string]interface{}) *WinPhoneBuilder {
	b.extras = extras
	b.extrasSet = true
	return b
}

// Build validates that exactly one notification type was selected and
// assembles the WinPhone override payload.
func (b *WinPhoneBuilder) Build() (Payload, error) {
	if b.notice == noticeNone || b.conflict {
		return nil, errors.ErrInvalidNoticeType
	}
	p := Payload{b.notice.key(): b.value}
	if b.extrasSet {
		p["extras"] = b.extras
	}
	return p, nil
}
