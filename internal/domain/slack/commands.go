package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdClockIn  CommandType = "clockin"
	CmdClockOut CommandType = "clockout"
	CmdSchedule CommandType = "schedule"
	CmdFines    CommandType = "fines"
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdPardon   CommandType = "pardon"
	CmdSync     CommandType = "sync"
	CmdSet      CommandType = "set"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "clockin", "in":
		cmd.Type = CmdClockIn
	case "clockout", "out":
		cmd.Type = CmdClockOut
	case "schedule":
		cmd.Type = CmdSchedule
	case "fines":
		cmd.Type = CmdFines
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "pardon":
		cmd.Type = CmdPardon
	case "sync":
		cmd.Type = CmdSync
	case "set":
		cmd.Type = CmdSet
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseUserMention extracts the user id from a `<@U123|name>` mention.
func ParseUserMention(mention string) (string, bool) {
	return parseMention(mention, "<@")
}

// ParseChannelMention extracts the channel id from a `<#C123|name>` mention.
func ParseChannelMention(mention string) (string, bool) {
	return parseMention(mention, "<#")
}

func parseMention(mention, prefix string) (string, bool) {
	m := strings.TrimSpace(mention)
	if !strings.HasPrefix(m, prefix) || !strings.HasSuffix(m, ">") {
		return "", false
	}

	id := strings.TrimSuffix(strings.TrimPrefix(m, prefix), ">")
	if idx := strings.Index(id, "|"); idx >= 0 {
		id = id[:idx]
	}
	if id == "" {
		return "", false
	}
	return id, true
}

func GetHelpText() string {
	return `*Available commands:*

*Attendance:*
• ` + "`/shift clockin`" + ` - Clock in for your nearest shift today (or ad-hoc if the channel is free)
• ` + "`/shift clockout`" + ` - Clock out of your active shift
• ` + "`/shift schedule`" + ` - Show upcoming shifts (next 24h)
• ` + "`/shift fines [@user]`" + ` - View fines (yours, or anyone's if admin)

*Admin:*
• ` + "`/shift add @user #channel 2025-08-23T14:00 2025-08-23T20:00 [tz=Europe/Zagreb] [model=Alice] [voice=#channel]`" + ` - Add a shift
• ` + "`/shift remove <id>`" + ` - Remove a shift by ID
• ` + "`/shift pardon <id>`" + ` - Delete a fine by ID
• ` + "`/shift sync`" + ` - Run a scheduler tick and refresh the board
• ` + "`/shift set fine <amount>`" + ` - Set the fine amount in EUR
• ` + "`/shift set tz <zone>`" + ` - Set the default timezone
• ` + "`/shift set board #channel`" + ` - Set the schedule board channel
• ` + "`/shift set logs #channel`" + ` - Set the shift logs channel`
}
