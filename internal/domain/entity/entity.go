package entity

import "time"

// EventKind identifies a time-triggered event in the shift event ledger.
type EventKind string

const (
	KindRemind   EventKind = "remind"
	KindStart    EventKind = "start"
	KindLateFine EventKind = "latefine"
)

// Shift is a scheduled (or ad-hoc) work period. Ad-hoc shifts created through
// clock-in have no end time until an admin sets one.
type Shift struct {
	ID             int64
	TeamID         string
	UserID         string
	ChannelID      string
	StartAt        time.Time
	EndAt          *time.Time
	Timezone       string
	Model          string
	VoiceChannelID string
	CreatedAt      time.Time
}

// Location resolves the shift's IANA timezone, falling back to UTC when the
// stored name no longer loads.
func (s *Shift) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Attendance is the clock-in/clock-out record attached to a shift. Only the
// most recently created row per shift is authoritative.
type Attendance struct {
	ID         int64
	UserID     string
	ShiftID    int64
	ClockInAt  *time.Time
	ClockOutAt *time.Time
}

// Active reports whether the worker is currently clocked in.
func (a *Attendance) Active() bool {
	return a != nil && a.ClockInAt != nil && a.ClockOutAt == nil
}

// Fine is a punitive charge for a missed clock-in.
type Fine struct {
	ID       int64
	TeamID   string
	UserID   string
	Amount   float64
	Reason   string
	IssuedAt time.Time
	ShiftID  *int64
	Model    string
}

// ShiftEvent marks a (shift, kind) pair as fired. The pair is unique, which is
// what makes the scheduler idempotent across restarts and concurrent ticks.
type ShiftEvent struct {
	ID      int64
	ShiftID int64
	Kind    EventKind
	FiredAt time.Time
}
