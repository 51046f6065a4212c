package pubsub

import (
	"encoding/json"
	"time"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys. Subscriptions may filter on event_type.
const (
	AttrEventType = "event_type"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushEnvelope is the JSON body Pub/Sub posts to push subscribers. The local publisher produces the same shape.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data        []byte            `json:"data"` // base64 on the wire
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

// encodeEvent returns the message payload and attributes for event.
func encodeEvent(event *service.SessionEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal session event")
	}

	attrs := map[string]string{
		AttrEventType: string(event.Type),
		AttrUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

// DecodeSessionEvent parses the payload of a pushed message and rejects events no consumer understands.
func DecodeSessionEvent(msg *PushMessage) (*service.SessionEvent, error) {
	var event service.SessionEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		return nil, errors.Wrap(err, "parse session event")
	}

	if event.Type != entity.SessionSignedIn && event.Type != entity.SessionSignedOut {
		return nil, errors.Errorf("unknown session event type %q", event.Type)
	}
	if event.UserID == "" {
		return nil, errors.New("session event without user_id")
	}
	if event.RequestID == "" {
		event.RequestID = msg.Attributes[AttrRequestID]
	}

	return &event, nil
}
