package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"go.uber.org/zap"
)

// schedulerService recomputes every shift's phase from (now, start, ledger)
// on each tick. There is no in-memory schedule: restarts lose nothing, and
// the shift_events ledger guarantees each (shift, kind) fires at most once.
type schedulerService struct {
	dm       contract.DataManager
	slack    contract.SlackClient
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time

	ticking  atomic.Bool
	stopChan chan struct{}
	running  bool
}

var _ contract.SchedulerService = (*schedulerService)(nil)

func (s *schedulerService) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))
	go s.mainLoop()
}

func (s *schedulerService) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *schedulerService) mainLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.RunTick(context.Background()); err != nil {
				s.log.Error("scheduler tick failed", zap.Error(err))
			}
		case <-s.stopChan:
			return
		}
	}
}

// RunTick scans shifts in the [now-2h, now+24h] window and fires any due
// remind/start/latefine events not yet in the ledger. A tick arriving while
// one is in flight is skipped, not queued.
func (s *schedulerService) RunTick(ctx context.Context) error {
	if !s.ticking.CompareAndSwap(false, true) {
		return nil
	}
	defer s.ticking.Store(false)

	now := s.now().UTC()
	shifts, err := s.dm.Shift().ListInWindow(now.Add(-domain.LookBehind), now.Add(domain.LookAhead))
	if err != nil {
		return fmt.Errorf("failed to scan shift window: %w", err)
	}

	for _, shift := range shifts {
		if err := s.processShift(ctx, shift, now); err != nil {
			// one bad shift must not stop the rest of the tick
			s.log.Error("shift processing failed",
				zap.Int64("shift_id", shift.ID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *schedulerService) processShift(ctx context.Context, shift *entity.Shift, now time.Time) error {
	attendance, err := s.dm.Attendance().GetByShiftID(shift.ID)
	if err != nil {
		return err
	}
	clockedIn := attendance != nil && attendance.ClockInAt != nil

	if err := s.fireNotification(shift, entity.KindRemind, shift.StartAt.Add(-domain.RemindLead), now, clockedIn, remindText(shift)); err != nil {
		return err
	}
	if err := s.fireNotification(shift, entity.KindStart, shift.StartAt, now, clockedIn, startText(shift)); err != nil {
		return err
	}

	return s.fireLateFine(ctx, shift, now, clockedIn)
}

// fireNotification handles the remind and start kinds: past the trigger and
// not yet in the ledger, it notifies the work channel unless the worker is
// already clocked in, then marks the ledger either way.
func (s *schedulerService) fireNotification(shift *entity.Shift, kind entity.EventKind, triggerAt, now time.Time, clockedIn bool, text string) error {
	if now.Before(triggerAt) {
		return nil
	}

	fired, err := s.dm.Event().HasFired(shift.ID, kind)
	if err != nil {
		return err
	}
	if fired {
		return nil
	}

	if !clockedIn {
		if err := postChannel(s.slack, shift.ChannelID, text); err != nil {
			s.log.Warn("notification delivery failed",
				zap.Int64("shift_id", shift.ID),
				zap.String("kind", string(kind)),
				zap.Error(err))
		}
	}

	return s.dm.Event().MarkFired(shift.ID, kind, now)
}

// fireLateFine issues the fine when the grace period elapses without a
// clock-in. Fine creation and ledger marking commit in one transaction so a
// crash between them cannot double-fine on retry.
func (s *schedulerService) fireLateFine(ctx context.Context, shift *entity.Shift, now time.Time, clockedIn bool) error {
	lateAt := shift.StartAt.Add(domain.LateGrace)
	if now.Before(lateAt) {
		return nil
	}

	fired, err := s.dm.Event().HasFired(shift.ID, entity.KindLateFine)
	if err != nil {
		return err
	}
	if fired {
		return nil
	}

	if clockedIn {
		return s.dm.Event().MarkFired(shift.ID, entity.KindLateFine, now)
	}

	amount := fineAmount(s.dm)
	reason := fmt.Sprintf("Late for shift starting %s", shift.StartAt.UTC().Format(time.RFC3339))

	dmText := fmt.Sprintf("You've been fined €%.2f for not clocking in on time. (%s)", amount, reason)
	if err := postDirect(s.slack, shift.UserID, dmText); err != nil {
		chText := fmt.Sprintf("<@%s> fined €%.2f for missing clock-in. (%s)", shift.UserID, amount, reason)
		if err := postChannel(s.slack, shift.ChannelID, chText); err != nil {
			s.log.Warn("fine notice delivery failed",
				zap.Int64("shift_id", shift.ID),
				zap.Error(err))
		}
	}

	shiftID := shift.ID
	fine := &entity.Fine{
		TeamID:   shift.TeamID,
		UserID:   shift.UserID,
		Amount:   amount,
		Reason:   reason,
		IssuedAt: now,
		ShiftID:  &shiftID,
		Model:    shift.Model,
	}

	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Fine().Create(fine); err != nil {
			return err
		}
		return dm.Event().MarkFired(shift.ID, entity.KindLateFine, now)
	})
}

func remindText(shift *entity.Shift) string {
	model := shift.Model
	if model == "" {
		model = "your model"
	}
	return fmt.Sprintf("<@%s> shift for *%s* starts in 15 minutes. Please clock in.", shift.UserID, model)
}

func startText(shift *entity.Shift) string {
	return fmt.Sprintf("⏰ <@%s> your shift *%s* starts NOW. Please clock in.", shift.UserID, shift.Model)
}
