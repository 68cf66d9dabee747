package contract

import (
	"context"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Shift() ShiftRepo
	Attendance() AttendanceRepo
	Fine() FineRepo
	Event() EventRepo
	Settings() SettingsRepo
}

// ShiftRepo defines the contract for the shift repository
type ShiftRepo interface {
	Create(shift *entity.Shift) error
	Delete(id int64) (int64, error)
	GetByID(id int64) (*entity.Shift, error)
	ListInWindow(from, to time.Time) ([]*entity.Shift, error)
	ListForBoard(from, to time.Time) ([]*entity.Shift, error)
	NearestForUserOnDay(userID string, reference time.Time) (*entity.Shift, error)
	ActiveForUser(userID string) (*entity.Shift, error)
}

// AttendanceRepo defines the contract for the attendance repository
type AttendanceRepo interface {
	Create(attendance *entity.Attendance) error
	GetByShiftID(shiftID int64) (*entity.Attendance, error)
	SetClockIn(shiftID int64, at time.Time) error
	SetClockOut(shiftID int64, at time.Time) error
	IsChannelActive(channelID string) (bool, error)
}

// FineRepo defines the contract for the fine repository
type FineRepo interface {
	Create(fine *entity.Fine) error
	Delete(id int64) (int64, error)
	ListByUser(userID string, limit int) ([]*entity.Fine, error)
}

// EventRepo is the shift event ledger. MarkFired is idempotent: a second mark
// for the same (shift, kind) pair is silently ignored.
type EventRepo interface {
	HasFired(shiftID int64, kind entity.EventKind) (bool, error)
	MarkFired(shiftID int64, kind entity.EventKind, at time.Time) error
}

// SettingsRepo is a plain key/value store with per-call fallbacks
type SettingsRepo interface {
	Get(key, fallback string) (string, error)
	Set(key, value string) error
}
