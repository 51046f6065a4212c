package pubsub

import (
	"encoding/json"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent_Attributes(t *testing.T) {
	_, attrs, err := encodeEvent(&service.SessionEvent{Type: entity.SessionSignedOut, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{AttrEventType: "signed_out", AttrUserID: "u1"}, attrs)

	_, attrs, err = encodeEvent(&service.SessionEvent{Type: entity.SessionSignedIn, UserID: "u1", RequestID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "r1", attrs[AttrRequestID])
}

func TestPushEnvelope_WireFormat(t *testing.T) {
	// A body as Pub/Sub posts it: data is base64 and publishTime is RFC 3339.
	body := `{
		"message": {
			"data": "eyJ0eXBlIjoic2lnbmVkX2luIiwidXNlcl9pZCI6InUxIiwib2NjdXJyZWRfYXQiOiIyMDI0LTAzLTAxVDAwOjAwOjAwWiJ9",
			"attributes": {"request_id": "req-9"},
			"messageId": "136969346945",
			"publishTime": "2024-03-01T00:00:01.123Z"
		},
		"subscription": "projects/mall/subscriptions/session-worker"
	}`

	var envelope PushEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "136969346945", envelope.Message.MessageID)

	event, err := DecodeSessionEvent(&envelope.Message)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionSignedIn, event.Type)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "req-9", event.RequestID)
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(event.OccurredAt))
}

func TestDecodeSessionEvent_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "nope"},
		{name: "unknown type", data: `{"type":"expired","user_id":"u1"}`},
		{name: "missing user", data: `{"type":"signed_out"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSessionEvent(&PushMessage{Data: []byte(tc.data)})
			require.Error(t, err)
		})
	}
}
