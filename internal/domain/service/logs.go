package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"go.uber.org/zap"
)

// auditLog posts clock-in/clock-out entries to the configured logs channel.
// Nothing here may fail the owning operation.
type auditLog struct {
	dm    contract.DataManager
	slack contract.SlackClient
	log   *zap.Logger
}

func (l *auditLog) record(event string, userID string, shift *entity.Shift, when time.Time, extra string) {
	channelID, err := l.dm.Settings().Get(domain.SettingLogsChannelID, "")
	if err != nil || channelID == "" {
		return
	}

	loc, tz := defaultLocation(l.dm)

	header := "✅ *Clock IN*"
	if event == "out" {
		header = "❌ *Clock OUT*"
	}

	model := shift.Model
	if model == "" {
		model = domain.DefaultModelLabel
	}

	lines := []string{
		header,
		fmt.Sprintf("• Worker: <@%s>", userID),
		fmt.Sprintf("• Model: %s", model),
		fmt.Sprintf("• Channel: <#%s>", shift.ChannelID),
		fmt.Sprintf("• Time: %s (%s)", when.In(loc).Format("2006-01-02 15:04"), tz),
	}
	if extra != "" {
		lines = append(lines, "• "+extra)
	}

	if err := postChannel(l.slack, channelID, strings.Join(lines, "\n")); err != nil {
		l.log.Warn("shift log delivery failed",
			zap.Int64("shift_id", shift.ID),
			zap.Error(err))
	}
}
