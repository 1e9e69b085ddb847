package idutil

import "github.com/google/uuid"

// SessionID tags every log line of one contactbook run. It is a UUIDv7, so
// IDs sort by session start.
type SessionID struct{ uuid.UUID }

// NewSessionID returns a fresh ID. If the v7 generator fails it falls back
// to a random v4 ID rather than running untagged.
func NewSessionID() SessionID {
	u, err := uuid.NewV7()
	if err != nil {
		u = uuid.New()
	}
	return SessionID{UUID: u}
}

func (id SessionID) String() string { return id.UUID.String() }
