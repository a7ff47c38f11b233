package domain

import (
	"encoding/json"
	"fmt"
)

// EventType follows a synthesis run through its states.
type EventType int

const (
	EventDispatching EventType = iota
	EventAcquired
	EventFailed
	EventConcatenating
	EventDone
	EventAborted
)

// serialized as strings for readability
var eventTypeName = map[EventType]string{
	EventDispatching:   "dispatching",
	EventAcquired:      "acquired",
	EventFailed:        "failed",
	EventConcatenating: "concatenating",
	EventDone:          "done",
	EventAborted:       "aborted",
}

var eventTypeValue = map[string]EventType{
	"dispatching":   EventDispatching,
	"acquired":      EventAcquired,
	"failed":        EventFailed,
	"concatenating": EventConcatenating,
	"done":          EventDone,
	"aborted":       EventAborted,
}

func (t EventType) String() string {
	return eventTypeName[t]
}

func (t EventType) MarshalJSON() ([]byte, error) {
	if name, ok := eventTypeName[t]; ok {
		return json.Marshal(name)
	}
	return nil, fmt.Errorf("unknown EventType: %d", t)
}

func (t *EventType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if v, ok := eventTypeValue[s]; ok {
		*t = v
		return nil
	}
	return fmt.Errorf("unknown EventType string: %s", s)
}

type SegmentEvent struct {
	Type    EventType `json:"type"`
	Key     string    `json:"key"`
	Index   int       `json:"index"`
	Total   int       `json:"total"`
	Message string    `json:"message,omitempty"`
}

// ProgressFunc receives run events, it may be nil.
type ProgressFunc func(SegmentEvent)

func (f ProgressFunc) Emit(e SegmentEvent) {
	if f != nil {
		f(e)
	}
}
