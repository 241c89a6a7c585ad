package sayf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMentionMessage(t *testing.T) {
	data := []byte(`{
		"event_type": 8,
		"time_stamp": 1714557600,
		"content": "!!sayf hi %p / carol",
		"id": 123,
		"user_id": 5,
		"user_name": "dave",
		"room_id": 11540,
		"room_name": "PHP",
		"message_id": 456,
		"parent_id": 455,
		"target_user_id": 9
	}`)

	ev, err := DecodeMentionMessage(data)
	require.NoError(t, err)
	assert.Equal(t, EventTypeMention, ev.EventType)
	assert.Equal(t, 123, ev.ID)
	assert.Equal(t, 456, ev.MessageID)
	assert.Equal(t, 455, ev.ParentID)
	assert.Equal(t, 11540, ev.RoomID)
	assert.Equal(t, "PHP", ev.RoomName)
	assert.Equal(t, 5, ev.UserID)
	assert.Equal(t, "dave", ev.UserName)
	assert.Equal(t, "!!sayf hi %p / carol", ev.Content)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), ev.Timestamp)

	t.Run("wrong event type", func(t *testing.T) {
		_, err := DecodeMentionMessage([]byte(`{"event_type": 1, "parent_id": 1}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnexpectedEvent)
		assert.Equal(t, "1", metadata(t, err, MetaKeyEventType))
	})

	t.Run("missing parent", func(t *testing.T) {
		_, err := DecodeMentionMessage([]byte(`{"event_type": 8}`))
		require.Error(t, err)
		assert.Equal(t, "parent_id", metadata(t, err, MetaKeyField))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeMentionMessage([]byte(`{"event_type": "8"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEventDecode)
	})
}

func TestDecodeDeleteMessage(t *testing.T) {
	data := []byte(`{"id": 77, "user_id": 5, "user_name": "dave", "room_id": 11540, "time_stamp": 0}`)

	msg, err := DecodeDeleteMessage(data)
	require.NoError(t, err)
	assert.Equal(t, DeleteMessage{
		ID:        77,
		UserID:    5,
		UserName:  "dave",
		RoomID:    11540,
		Timestamp: time.Unix(0, 0).UTC(),
	}, msg)

	_, err = DecodeDeleteMessage([]byte(`[]`))
	assert.Error(t, err)
}
