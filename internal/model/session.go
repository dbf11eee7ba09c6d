package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Session is the session summary LegiScan embeds in session lists, master
// lists and bill detail. Every field is nullable upstream.
type Session struct {
	SessionID    *uint32 `json:"session_id"`
	StateID      *uint32 `json:"state_id"`
	StateAbbr    *string `json:"state_abbr"`
	YearStart    *uint32 `json:"year_start"`
	YearEnd      *uint32 `json:"year_end"`
	Prefile      *uint32 `json:"prefile"`
	SineDie      *uint32 `json:"sine_die"`
	Prior        *uint32 `json:"prior"`
	Special      *uint32 `json:"special"`
	SessionTag   *string `json:"session_tag"`
	SessionTitle *string `json:"session_title"`
	SessionName  *string `json:"session_name"`
	DatasetHash  *string `json:"dataset_hash"`
}

// Name returns the session name, or "" when upstream sent none.
func (s Session) Name() string {
	if s.SessionName == nil {
		return ""
	}
	return *s.SessionName
}

// SessionList represents the getSessionList response
type SessionList struct {
	Status   string        `json:"status"`
	Sessions List[Session] `json:"sessions"`
}

var (
	errMissingStatus   = errors.New("missing field `status`")
	errMissingSessions = errors.New("missing field `sessions`")
)

// UnmarshalJSON requires the exact keys status and sessions, both non-null.
// Keys are matched case-sensitively, unlike encoding/json's default.
func (l *SessionList) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	status, ok := fields["status"]
	if !ok || isNull(status) {
		return errMissingStatus
	}
	sessions, ok := fields["sessions"]
	if !ok || isNull(sessions) {
		return errMissingSessions
	}

	if err := json.Unmarshal(status, &l.Status); err != nil {
		return fmt.Errorf("field `status`: %w", err)
	}
	if err := json.Unmarshal(sessions, &l.Sessions); err != nil {
		return fmt.Errorf("field `sessions`: %w", err)
	}
	return nil
}

// Names returns one entry per session, in upstream order.
func (l SessionList) Names() []string {
	names := make([]string, len(l.Sessions))
	for i, s := range l.Sessions {
		names[i] = s.Name()
	}
	return names
}
