// Package pushkit builds and validates multi-platform push request bodies.
//
// The library is a pure data-shaping layer: callers assemble a
// notification with optional per-platform overrides (iOS/APNS, Android,
// Windows Phone/MPNS), an audience selector, a platform selector, and
// optional message or SMS bodies; pushkit validates each piece against
// the target service's field contract and emits a plain key/value
// structure ready for JSON serialization. Transport, authentication,
// and retry belong to the caller.
//
//	notification, err := payload.NewNotification().
//		Alert("Hello").
//		IOS(iosOverride).
//		Build()
//	if err != nil { ... }
//
//	push, err := pushkit.NewPush().
//		Platform(platform.All).
//		Audience(aud).
//		Notification(notification).
//		Build()
package pushkit

// Version is the pushkit library version.
const Version = "1.0.0"
