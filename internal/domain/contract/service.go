package contract

import (
	"context"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

// CreateShiftParams carries the raw admin input for a scheduled shift. Start
// and End are local wall-clock strings interpreted in Timezone.
type CreateShiftParams struct {
	UserID         string
	ChannelID      string
	Start          string
	End            string
	Timezone       string
	Model          string
	VoiceChannelID string
}

// ClockInResult reports a successful clock-in.
type ClockInResult struct {
	Shift *entity.Shift
	At    time.Time
	AdHoc bool
	// Note is the lateness annotation: "On time" or "Late: N min".
	Note string
}

type ClockOutStatus string

const (
	ClockOutDone      ClockOutStatus = "done"
	ClockOutPending   ClockOutStatus = "pending"
	ClockOutCancelled ClockOutStatus = "cancelled"
)

// ClockOutResult reports a clock-out attempt. A Pending status means the user
// asked to leave before the scheduled end and must confirm via Token within
// the confirmation window.
type ClockOutResult struct {
	Status ClockOutStatus
	Shift  *entity.Shift
	At     time.Time
	Token  string
	// EndsAt is the scheduled end formatted in the shift's timezone, set on
	// Pending results for the confirmation prompt.
	EndsAt string
}

type ShiftService interface {
	CreateShift(ctx context.Context, params CreateShiftParams) (*entity.Shift, error)
	RemoveShift(ctx context.Context, id int64) error
	ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Shift, error)
	ClockIn(ctx context.Context, userID, channelID string) (*ClockInResult, error)
	ClockOut(ctx context.Context, userID string) (*ClockOutResult, error)
	ResolveClockOut(ctx context.Context, token, userID string, confirmed bool) (*ClockOutResult, error)
	ListFines(ctx context.Context, userID string, limit int) ([]*entity.Fine, error)
	PardonFine(ctx context.Context, id int64) error
	DefaultTimezone(ctx context.Context) (string, error)
	SetDefaultTimezone(ctx context.Context, tz string) error
	SetFineAmount(ctx context.Context, amount float64) error
	SetBoardChannel(ctx context.Context, channelID string) error
	SetLogsChannel(ctx context.Context, channelID string) error
}

// BoardService maintains the pinned schedule board message.
type BoardService interface {
	Refresh(ctx context.Context) error
}

// SchedulerService runs the periodic scan-and-fire tick.
type SchedulerService interface {
	RunTick(ctx context.Context) error
}
