package service

import (
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// Delivery helpers for the notification sink. All callers treat failures as
// non-fatal.

func postChannel(client contract.SlackClient, channelID, text string) error {
	_, _, err := client.PostMessage(channelID, slack.MsgOptionText(text, false))
	return err
}

func postDirect(client contract.SlackClient, userID, text string) error {
	channel, _, _, err := client.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return err
	}

	_, _, err = client.PostMessage(channel.ID, slack.MsgOptionText(text, false))
	return err
}
