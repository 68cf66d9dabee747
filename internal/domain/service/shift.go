package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"go.uber.org/zap"
)

// shiftService is the attendance state machine: it owns clock-in/clock-out
// transitions, ad-hoc shift creation, and shift/fine administration.
type shiftService struct {
	dm            contract.DataManager
	slack         contract.SlackClient
	log           *zap.Logger
	teamID        string
	presence      *presence
	audit         *auditLog
	confirmations *clockOutConfirmations
	now           func() time.Time
}

var _ contract.ShiftService = (*shiftService)(nil)

func (s *shiftService) CreateShift(ctx context.Context, params contract.CreateShiftParams) (*entity.Shift, error) {
	tz := params.Timezone
	if tz == "" {
		var err error
		tz, err = defaultTimezone(s.dm)
		if err != nil {
			return nil, err
		}
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, domain.ErrInvalidTimezone
	}

	start, err := parseLocalTime(params.Start, loc)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	end, err := parseLocalTime(params.End, loc)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	if !end.After(start) {
		return nil, domain.ErrEndBeforeStart
	}

	endUTC := end.UTC()
	shift := &entity.Shift{
		TeamID:         s.teamID,
		UserID:         params.UserID,
		ChannelID:      params.ChannelID,
		StartAt:        start.UTC(),
		EndAt:          &endUTC,
		Timezone:       tz,
		Model:          params.Model,
		VoiceChannelID: params.VoiceChannelID,
	}

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Shift().Create(shift); err != nil {
			return err
		}
		return dm.Attendance().Create(&entity.Attendance{
			UserID:  params.UserID,
			ShiftID: shift.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return shift, nil
}

func (s *shiftService) RemoveShift(ctx context.Context, id int64) error {
	affected, err := s.dm.Shift().Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *shiftService) ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Shift, error) {
	now := s.now().UTC()
	return s.dm.Shift().ListInWindow(now, now.Add(within))
}

// ClockIn clocks the user into their nearest shift today, or creates an
// ad-hoc shift when none is scheduled and the channel is free. The lookup and
// the write happen in one transaction so two concurrent clock-ins for the
// same channel cannot both take the ad-hoc path.
func (s *shiftService) ClockIn(ctx context.Context, userID, channelID string) (*contract.ClockInResult, error) {
	now := s.now().UTC()

	var result *contract.ClockInResult
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		shift, err := dm.Shift().NearestForUserOnDay(userID, now)
		if err != nil {
			return err
		}

		if shift != nil {
			attendance, err := dm.Attendance().GetByShiftID(shift.ID)
			if err != nil {
				return err
			}
			if attendance != nil && attendance.ClockInAt != nil {
				return domain.ErrAlreadyClockedIn
			}

			if err := dm.Attendance().SetClockIn(shift.ID, now); err != nil {
				return err
			}
			// Pre-mark so the scheduler won't ping after a real clock-in
			if err := dm.Event().MarkFired(shift.ID, entity.KindRemind, now); err != nil {
				return err
			}
			if err := dm.Event().MarkFired(shift.ID, entity.KindStart, now); err != nil {
				return err
			}

			result = &contract.ClockInResult{
				Shift: shift,
				At:    now,
				Note:  latenessNote(now, shift.StartAt),
			}
			return nil
		}

		// Ad-hoc path: only when nobody else is active in the channel
		active, err := dm.Attendance().IsChannelActive(channelID)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrChannelBusy
		}

		tz, err := dm.Settings().Get(domain.SettingDefaultTZ, domain.DefaultTimezone)
		if err != nil {
			return err
		}

		adhoc := &entity.Shift{
			TeamID:    s.teamID,
			UserID:    userID,
			ChannelID: channelID,
			StartAt:   now,
			Timezone:  tz,
		}
		if err := dm.Shift().Create(adhoc); err != nil {
			return err
		}

		clockIn := now
		if err := dm.Attendance().Create(&entity.Attendance{
			UserID:    userID,
			ShiftID:   adhoc.ID,
			ClockInAt: &clockIn,
		}); err != nil {
			return err
		}

		result = &contract.ClockInResult{
			Shift: adhoc,
			At:    now,
			AdHoc: true,
			Note:  "Ad-hoc (unscheduled) clock-in",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterClockIn(result)
	return result, nil
}

// ClockOut ends the user's active shift. Leaving before the scheduled end
// requires a confirmation within the confirmation window; the returned
// Pending result carries the session token.
func (s *shiftService) ClockOut(ctx context.Context, userID string) (*contract.ClockOutResult, error) {
	now := s.now().UTC()

	shift, err := s.dm.Shift().ActiveForUser(userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNoActiveShift
	}

	if shift.EndAt != nil && now.Before(*shift.EndAt) {
		pending := s.confirmations.Add(userID, shift, now)
		return &contract.ClockOutResult{
			Status: contract.ClockOutPending,
			Shift:  shift,
			Token:  pending.Token,
			EndsAt: fmt.Sprintf("%s (%s)", shift.EndAt.In(shift.Location()).Format("15:04"), shift.Timezone),
		}, nil
	}

	return s.finalizeClockOut(ctx, shift, now)
}

// ResolveClockOut settles a pending early clock-out. Input from anyone but
// the original requester is rejected without consuming the session.
func (s *shiftService) ResolveClockOut(ctx context.Context, token, userID string, confirmed bool) (*contract.ClockOutResult, error) {
	pending, err := s.confirmations.Claim(token, userID)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		return &contract.ClockOutResult{
			Status: contract.ClockOutCancelled,
			Shift:  pending.Shift,
		}, nil
	}

	return s.finalizeClockOut(ctx, pending.Shift, s.now().UTC())
}

func (s *shiftService) finalizeClockOut(ctx context.Context, shift *entity.Shift, at time.Time) (*contract.ClockOutResult, error) {
	if err := s.dm.Attendance().SetClockOut(shift.ID, at); err != nil {
		return nil, err
	}

	if err := postChannel(s.slack, shift.ChannelID, fmt.Sprintf("<@%s> clocked out ❌", shift.UserID)); err != nil {
		s.log.Warn("clock-out notice failed", zap.Int64("shift_id", shift.ID), zap.Error(err))
	}

	label := shift.Model
	if label == "" {
		label = domain.DefaultModelLabel
	}
	voiceID := shift.VoiceChannelID
	if voiceID == "" {
		voiceID, label = s.presence.Resolve(shift.ChannelID, label)
	}
	s.presence.Rename(voiceID, "❌ "+label)

	s.audit.record("out", shift.UserID, shift, at, "")

	return &contract.ClockOutResult{
		Status: contract.ClockOutDone,
		Shift:  shift,
		At:     at,
	}, nil
}

// expireClockOut runs when a confirmation window elapses with no response.
func (s *shiftService) expireClockOut(pending *pendingClockOut) {
	s.log.Info("clock-out confirmation timed out",
		zap.Int64("shift_id", pending.Shift.ID),
		zap.String("user_id", pending.UserID))

	text := fmt.Sprintf("<@%s> ⌛ clock-out request timed out.", pending.UserID)
	if err := postChannel(s.slack, pending.Shift.ChannelID, text); err != nil {
		s.log.Warn("timeout notice failed", zap.Error(err))
	}
}

func (s *shiftService) afterClockIn(result *contract.ClockInResult) {
	shift := result.Shift

	text := fmt.Sprintf("<@%s> clocked in ✅", shift.UserID)
	if result.AdHoc {
		text += " _(unscheduled/ad-hoc)_"
	}
	if err := postChannel(s.slack, shift.ChannelID, text); err != nil {
		s.log.Warn("clock-in notice failed", zap.Int64("shift_id", shift.ID), zap.Error(err))
	}

	label := shift.Model
	if label == "" {
		label = domain.DefaultModelLabel
	}
	voiceID := shift.VoiceChannelID
	if voiceID == "" {
		voiceID, label = s.presence.Resolve(shift.ChannelID, label)
	}
	s.presence.Rename(voiceID, fmt.Sprintf("✅ %s - %s", label, s.displayName(shift.UserID)))

	s.audit.record("in", shift.UserID, shift, result.At, result.Note)
}

func (s *shiftService) displayName(userID string) string {
	user, err := s.slack.GetUserInfo(userID)
	if err != nil {
		return userID
	}
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	return user.Name
}

func (s *shiftService) ListFines(ctx context.Context, userID string, limit int) ([]*entity.Fine, error) {
	if limit <= 0 {
		limit = domain.FinesListLimit
	}
	return s.dm.Fine().ListByUser(userID, limit)
}

func (s *shiftService) PardonFine(ctx context.Context, id int64) error {
	affected, err := s.dm.Fine().Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *shiftService) DefaultTimezone(ctx context.Context) (string, error) {
	return defaultTimezone(s.dm)
}

func (s *shiftService) SetDefaultTimezone(ctx context.Context, tz string) error {
	if _, err := time.LoadLocation(tz); err != nil || tz == "" {
		return domain.ErrInvalidTimezone
	}
	return s.dm.Settings().Set(domain.SettingDefaultTZ, tz)
}

func (s *shiftService) SetFineAmount(ctx context.Context, amount float64) error {
	return s.dm.Settings().Set(domain.SettingFineAmount, strconv.FormatFloat(amount, 'f', -1, 64))
}

func (s *shiftService) SetBoardChannel(ctx context.Context, channelID string) error {
	if err := s.dm.Settings().Set(domain.SettingBoardChannelID, channelID); err != nil {
		return err
	}
	// The board message lives in the old channel; force a fresh post
	return s.dm.Settings().Set(domain.SettingBoardMessageID, "")
}

func (s *shiftService) SetLogsChannel(ctx context.Context, channelID string) error {
	return s.dm.Settings().Set(domain.SettingLogsChannelID, channelID)
}

// latenessNote reports whole minutes late, floored; zero or early is on time.
func latenessNote(now, start time.Time) string {
	mins := int(now.Sub(start).Minutes())
	if mins > 0 {
		return fmt.Sprintf("Late: %d min", mins)
	}
	return "On time"
}

func parseLocalTime(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, loc)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.RFC3339, value, loc)
}
