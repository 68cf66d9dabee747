package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously posted message
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// OpenConversation opens (or resumes) a direct message conversation
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)

	// GetConversationInfo retrieves channel metadata
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// GetConversations lists channels visible to the bot
	GetConversations(params *slack.GetConversationsParameters) ([]slack.Channel, string, error)

	// RenameConversation renames a channel
	RenameConversation(channelID, name string) (*slack.Channel, error)
}
