package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"
)

// boardService maintains a single schedule message in the configured board
// channel, editing it in place when possible.
type boardService struct {
	dm    contract.DataManager
	slack contract.SlackClient
	log   *zap.Logger
	now   func() time.Time
}

var _ contract.BoardService = (*boardService)(nil)

func (s *boardService) Refresh(ctx context.Context) error {
	channelID, err := s.dm.Settings().Get(domain.SettingBoardChannelID, "")
	if err != nil {
		return err
	}
	if channelID == "" {
		return nil
	}

	now := s.now().UTC()
	shifts, err := s.dm.Shift().ListForBoard(now, now.AddDate(0, 0, domain.BoardWindowDays))
	if err != nil {
		return err
	}

	loc, tz := defaultLocation(s.dm)
	text := renderBoard(shifts, loc, tz, now)

	messageID, err := s.dm.Settings().Get(domain.SettingBoardMessageID, "")
	if err != nil {
		return err
	}

	if messageID != "" {
		if _, _, _, err := s.slack.UpdateMessage(channelID, messageID, slackapi.MsgOptionText(text, false)); err == nil {
			return nil
		}
		// stale message id, fall through to a fresh post
	}

	_, timestamp, err := s.slack.PostMessage(channelID, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post schedule board: %w", err)
	}

	return s.dm.Settings().Set(domain.SettingBoardMessageID, timestamp)
}

// renderBoard groups shifts by day in the default timezone. The shifts are
// already ordered by start time.
func renderBoard(shifts []*entity.Shift, loc *time.Location, tz string, now time.Time) string {
	todayKey := now.In(loc).Format("Mon 02.01")
	todayCount := 0
	for _, shift := range shifts {
		if shift.StartAt.In(loc).Format("Mon 02.01") == todayKey {
			todayCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*📅 Schedule (auto) — TZ: %s*\n> Today: *%d* shift(s)\n\n", tz, todayCount)

	if len(shifts) == 0 {
		b.WriteString("_No scheduled shifts._")
		return strings.TrimSpace(b.String())
	}

	currentDay := ""
	for _, shift := range shifts {
		start := shift.StartAt.In(loc)

		dayKey := start.Format("Mon 02.01")
		if dayKey != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "_%s_\n", dayKey)
			currentDay = dayKey
		}

		end := "??"
		if shift.EndAt != nil {
			end = shift.EndAt.In(loc).Format("15:04")
		}

		model := shift.Model
		if model == "" {
			model = domain.DefaultModelLabel
		}

		fmt.Fprintf(&b, "• *%s–%s* • %s • <@%s> • <#%s>",
			start.Format("15:04"), end, model, shift.UserID, shift.ChannelID)
		if shift.VoiceChannelID != "" {
			fmt.Fprintf(&b, " • VC: <#%s>", shift.VoiceChannelID)
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
