package domain

import "time"

// Trigger offsets relative to a shift's start time.
const (
	RemindLead = 15 * time.Minute
	LateGrace  = 15 * time.Minute
)

// Scheduler tick cadence and the scan window around "now". A shift first seen
// more than LookBehind after its late trigger never fires latefine.
const (
	TickInterval = 30 * time.Second
	LookBehind   = 2 * time.Hour
	LookAhead    = 24 * time.Hour
)

// ConfirmTimeout bounds the early clock-out confirmation dialog.
const ConfirmTimeout = 30 * time.Second

// Settings keys persisted in the settings table.
const (
	SettingDefaultTZ      = "default_tz"
	SettingFineAmount     = "fine_eur"
	SettingBoardChannelID = "schedule_channel_id"
	SettingBoardMessageID = "schedule_message_id"
	SettingLogsChannelID  = "shift_logs_channel_id"
)

// Fallbacks when a setting row is missing entirely.
const (
	DefaultTimezone   = "Europe/Zagreb"
	DefaultFineAmount = 20.0
)

// DefaultModelLabel is used where a shift has no model label.
const DefaultModelLabel = "Model"

const (
	BoardWindowDays = 7
	FinesListLimit  = 25
)
