package sayf

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/itsatony/go-cuserr"
)

// EventTypeMention is the chat event type id of a message that mentions the bot.
const EventTypeMention = 8

// MessageEvent is a chat event carrying a message.
type MessageEvent struct {
	EventType int
	ID        int
	MessageID int
	RoomID    int
	RoomName  string
	UserID    int
	UserName  string
	Content   string
	Timestamp time.Time
}

// MentionMessage is posted to a user when someone pings them.
type MentionMessage struct {
	MessageEvent
	ParentID int
}

// DeleteMessage records the removal of a message.
type DeleteMessage struct {
	ID        int
	UserID    int
	UserName  string
	RoomID    int
	Timestamp time.Time
}

// eventRecord is the wire form shared by message events.
type eventRecord struct {
	EventType int    `json:"event_type"`
	ID        int    `json:"id"`
	MessageID int    `json:"message_id"`
	RoomID    int    `json:"room_id"`
	RoomName  string `json:"room_name"`
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	TimeStamp int64  `json:"time_stamp"`
	ParentID  *int   `json:"parent_id"`
}

func (r eventRecord) messageEvent() MessageEvent {
	return MessageEvent{
		EventType: r.EventType,
		ID:        r.ID,
		MessageID: r.MessageID,
		RoomID:    r.RoomID,
		RoomName:  r.RoomName,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Content:   r.Content,
		Timestamp: time.Unix(r.TimeStamp, 0).UTC(),
	}
}

// DecodeMentionMessage decodes a mention event. The event type must be
// EventTypeMention and parent_id must be present.
func DecodeMentionMessage(data []byte) (MentionMessage, error) {
	var rec eventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return MentionMessage{}, NewEventError(ErrMsgEventDecode, err)
	}
	if rec.EventType != EventTypeMention {
		return MentionMessage{}, unexpectedEvent(rec.EventType)
	}
	if rec.ParentID == nil {
		return MentionMessage{}, cuserr.NewValidationError(ErrCodeEvent, ErrMsgEventDecode).
			WithMetadata(MetaKeyField, "parent_id")
	}
	return MentionMessage{
		MessageEvent: rec.messageEvent(),
		ParentID:     *rec.ParentID,
	}, nil
}

// DecodeDeleteMessage decodes a deleted message record.
func DecodeDeleteMessage(data []byte) (DeleteMessage, error) {
	var rec eventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return DeleteMessage{}, NewEventError(ErrMsgEventDecode, err)
	}
	return DeleteMessage{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		RoomID:    rec.RoomID,
		Timestamp: time.Unix(rec.TimeStamp, 0).UTC(),
	}, nil
}

func unexpectedEvent(eventType int) error {
	return cuserr.NewValidationError(ErrCodeEvent, ErrMsgUnexpectedEvent).
		WithMetadata(MetaKeyEventType, strconv.Itoa(eventType))
}
