package service

import (
	"strings"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// presence is the directory sink: it resolves the voice channel and model
// label associated with a work channel, and renames voice channels to show
// who is on shift. Every operation is best-effort.
type presence struct {
	slack contract.SlackClient
	log   *zap.Logger
}

// Resolve derives the model label from the work channel's name (the part
// before the first dash) and looks for a sibling channel named
// "<label>-voice". Either result may be empty.
func (p *presence) Resolve(textChannelID, fallbackLabel string) (voiceChannelID, label string) {
	label = fallbackLabel

	info, err := p.slack.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID: textChannelID,
	})
	if err != nil {
		p.log.Warn("channel lookup failed",
			zap.String("channel_id", textChannelID),
			zap.Error(err))
		return "", label
	}

	if info.Name != "" {
		label = info.Name
		if idx := strings.Index(info.Name, "-"); idx > 0 {
			label = info.Name[:idx]
		}
	}

	voiceName := label + "-voice"
	channels, _, err := p.slack.GetConversations(&slack.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           200,
	})
	if err != nil {
		p.log.Warn("channel list failed", zap.Error(err))
		return "", label
	}

	for _, ch := range channels {
		if ch.Name == voiceName {
			return ch.ID, label
		}
	}

	return "", label
}

// Rename renames a voice channel. A missing channel id is a silent no-op.
func (p *presence) Rename(voiceChannelID, name string) {
	if voiceChannelID == "" {
		return
	}

	if _, err := p.slack.RenameConversation(voiceChannelID, name); err != nil {
		p.log.Warn("voice rename failed",
			zap.String("channel_id", voiceChannelID),
			zap.String("name", name),
			zap.Error(err))
	}
}
