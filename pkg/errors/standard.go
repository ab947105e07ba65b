package errors

// Standard error definitions shared by the payload builders

// Notification assembly errors
var (
	ErrEmptyNotification = New(CodeEmptyNotification, "notification body may not be empty")
)

// iOS override errors
var (
	ErrInvalidIOSAlert  = NewWithField(CodeInvalidAlert, "alert", "iOS alert must be a string or a map")
	ErrInvalidBadge     = NewWithField(CodeInvalidBadge, "badge", "iOS badge must be an integer or string")
	ErrInvalidAutoBadge = NewWithField(CodeInvalidBadge, "badge", "invalid iOS autobadge value")
)

// WinPhone override errors
var (
	ErrInvalidNoticeType = New(CodeInvalidNoticeType, "winphone payload must have exactly one notification type")
)

// Push composition errors
var (
	ErrMissingPlatform = New(CodeMissingPlatform, "push requires a platform selector")
	ErrMissingAudience = New(CodeMissingAudience, "push requires an audience selector")
	ErrEmptyPush       = New(CodeEmptyPush, "push must carry a notification or a message")
)
