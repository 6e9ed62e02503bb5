package events

import (
	"encoding/json"
	"time"
)

// Exchange names. Both are topic exchanges so consumers could bind with
// wildcards, although the system currently publishes two event types with
// exact-match bindings.
const (
	ExchangeUserEvents = "user.events"
	ExchangeCaveEvents = "cave.events"
)

// Event names double as routing keys.
const (
	EventUserDeleted = "user.deleted"
	EventCaveDeleted = "cave.deleted"
)

// Envelope is the minimal shape shared by every published event. Consumers
// decode it first to route on the event name, then decode the full payload.
type Envelope struct {
	Event     string  `json:"event"`
	Timestamp float64 `json:"timestamp,omitempty"`
}

// CaveDeletedEvent is published by the cave service after a cave row has
// been removed. MediaFileIDs lets the media service clean up without a
// callback to the already-deleted cave.
type CaveDeletedEvent struct {
	Event        string  `json:"event"`
	CaveID       uint    `json:"caveId"`
	CaveName     string  `json:"caveName"`
	OwnerEmail   string  `json:"ownerEmail"`
	MediaFileIDs []uint  `json:"mediaFileIds,omitempty"`
	Timestamp    float64 `json:"timestamp"`
}

// NewCaveDeleted builds a cave.deleted event stamped with the current time
func NewCaveDeleted(caveID uint, caveName, ownerEmail string, mediaFileIDs []uint) CaveDeletedEvent {
	return CaveDeletedEvent{
		Event:        EventCaveDeleted,
		CaveID:       caveID,
		CaveName:     caveName,
		OwnerEmail:   ownerEmail,
		MediaFileIDs: mediaFileIDs,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
	}
}

// UserDeletedEvent is published by the user service when an account is
// removed. UserID may be null for accounts that predate external ids.
type UserDeletedEvent struct {
	Event  string  `json:"event"`
	Email  string  `json:"email"`
	UserID *string `json:"userId"`
}

// DecodeEnvelope extracts the routing envelope from a raw message body
func DecodeEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(body, &env)
	return env, err
}
