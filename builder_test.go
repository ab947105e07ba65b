package pushkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/pushkit/pkg/audience"
	"github.com/kart-io/pushkit/pkg/errors"
	"github.com/kart-io/pushkit/pkg/payload"
	"github.com/kart-io/pushkit/pkg/platform"
)

func buildNotification(t *testing.T) payload.Payload {
	t.Helper()
	n, err := payload.NewNotification().Alert("Hello").Build()
	require.NoError(t, err)
	return n
}

func TestPushBuilder(t *testing.T) {
	t.Run("minimal push", func(t *testing.T) {
		p, err := NewPush().
			Platform(platform.All).
			Audience(audience.All).
			Notification(buildNotification(t)).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "all", p["platform"])
		assert.Equal(t, "all", p["audience"])
		assert.Equal(t, payload.Payload{"alert": "Hello"}, p["notification"])
	})

	t.Run("full push", func(t *testing.T) {
		plat, err := platform.New("ios", "android")
		require.NoError(t, err)
		aud, err := audience.New(audience.Tag("sports"))
		require.NoError(t, err)

		p, err := NewPush().
			Platform(plat).
			Audience(aud).
			Notification(buildNotification(t)).
			Message(payload.NewMessage("inner body").Build()).
			SMSMessage(payload.SMSMessage("sms body", 60)).
			CID("custom-cid").
			Options(map[string]interface{}{"time_to_live": 300}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, []string{"ios", "android"}, p["platform"])
		assert.Equal(t, map[string]interface{}{"tag": []string{"sports"}}, p["audience"])
		assert.Equal(t, payload.Payload{"msg_content": "inner body"}, p["message"])
		assert.Equal(t, payload.Payload{"content": "sms body", "delay_time": 60}, p["sms_message"])
		assert.Equal(t, "custom-cid", p["cid"])
		assert.Equal(t, map[string]interface{}{"time_to_live": 300}, p["options"])
	})

	t.Run("message alone satisfies the body requirement", func(t *testing.T) {
		p, err := NewPush().
			Platform(platform.All).
			Audience(audience.All).
			Message(payload.NewMessage("inner body").Build()).
			Build()
		require.NoError(t, err)
		assert.False(t, p.Has("notification"))
	})

	t.Run("missing platform fails", func(t *testing.T) {
		_, err := NewPush().
			Audience(audience.All).
			Notification(buildNotification(t)).
			Build()
		assert.ErrorIs(t, err, errors.ErrMissingPlatform)
	})

	t.Run("missing audience fails", func(t *testing.T) {
		_, err := NewPush().
			Platform(platform.All).
			Notification(buildNotification(t)).
			Build()
		assert.ErrorIs(t, err, errors.ErrMissingAudience)
	})

	t.Run("missing body fails", func(t *testing.T) {
		_, err := NewPush().
			Platform(platform.All).
			Audience(audience.All).
			Build()
		assert.ErrorIs(t, err, errors.ErrEmptyPush)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unset optional parts are omitted", func(t *testing.T) {
		p, err := NewPush().
			Platform(platform.All).
			Audience(audience.All).
			Notification(buildNotification(t)).
			Build()
		require.NoError(t, err)
		assert.False(t, p.Has("message"))
		assert.False(t, p.Has("sms_message"))
		assert.False(t, p.Has("cid"))
		assert.False(t, p.Has("options"))
	})
}
