package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageBuilder(t *testing.T) {
	t.Run("content only", func(t *testing.T) {
		p := NewMessage("breaking news").Build()
		assert.Equal(t, Payload{"msg_content": "breaking news"}, p)
	})

	t.Run("all fields", func(t *testing.T) {
		extras := map[string]interface{}{"articleid": "12345"}
		p := NewMessage("breaking news").
			Title("News").
			ContentType("text/plain").
			Extras(extras).
			Build()

		assert.Equal(t, "breaking news", p["msg_content"])
		assert.Equal(t, "News", p["title"])
		assert.Equal(t, "text/plain", p["content_type"])
		assert.Equal(t, extras, p["extras"])
	})

	t.Run("unset fields are omitted", func(t *testing.T) {
		p := NewMessage("breaking news").Build()
		assert.False(t, p.Has("title"))
		assert.False(t, p.Has("content_type"))
		assert.False(t, p.Has("extras"))
	})
}

func TestSMSMessage(t *testing.T) {
	t.Run("both fields always present", func(t *testing.T) {
		p := SMSMessage("your code is 1234", 60)
		assert.Equal(t, Payload{"content": "your code is 1234", "delay_time": 60}, p)
	})

	t.Run("zero delay is retained", func(t *testing.T) {
		p := SMSMessage("hello", 0)
		assert.Equal(t, 0, p["delay_time"])
	})
}

func TestCID(t *testing.T) {
	p := CID("8103a4c628a0b98974ec1949-711261d4-5f17-4d2f-a855-5e5a8909b26e")
	assert.Equal(t, Payload{"cid": "8103a4c628a0b98974ec1949-711261d4-5f17-4d2f-a855-5e5a8909b26e"}, p)
}

func TestOptions(t *testing.T) {
	t.Run("wraps under the options key", func(t *testing.T) {
		opts := map[string]interface{}{"time_to_live": 60, "apns_production": false}
		p := Options(opts)
		assert.Equal(t, Payload{"options": opts}, p)
	})

	t.Run("no validation is performed", func(t *testing.T) {
		opts := map[string]interface{}{"anything": []int{1, 2, 3}}
		p := Options(opts)
		assert.Equal(t, opts, p["options"])
	})

	t.Run("nil mapping passes through", func(t *testing.T) {
		p := Options(nil)
		assert.True(t, p.Has("options"))
	})
}
