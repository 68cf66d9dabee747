package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	slackcmd "github.com/dmarkovic/shiftbot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	shiftService  contract.ShiftService
	boardService  contract.BoardService
	scheduler     contract.SchedulerService
	signingSecret string
	log           *zap.Logger
}

func New(slackClient contract.SlackClient, shiftService contract.ShiftService, boardService contract.BoardService, scheduler contract.SchedulerService, signingSecret string, logger *zap.Logger) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		shiftService:  shiftService,
		boardService:  boardService,
		scheduler:     scheduler,
		signingSecret: signingSecret,
		log:           logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.errorResponse(err.Error()))
		return
	}

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

// verifyRequest checks the Slack signing secret and returns the raw body.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdClockIn:
		return h.handleClockIn(ctx, slashCmd)
	case slackcmd.CmdClockOut:
		return h.handleClockOut(ctx, slashCmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx)
	case slackcmd.CmdFines:
		return h.handleFines(ctx, cmd, slashCmd)
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(ctx, cmd, slashCmd)
	case slackcmd.CmdPardon:
		return h.handlePardon(ctx, cmd, slashCmd)
	case slackcmd.CmdSync:
		return h.handleSync(ctx, slashCmd)
	case slackcmd.CmdSet:
		return h.handleSet(ctx, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.errorResponse("Unknown command.")
	}
}

func (h *SlackHandler) handleClockIn(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	result, err := h.shiftService.ClockIn(ctx, slashCmd.UserID, slashCmd.ChannelID)
	switch {
	case errors.Is(err, domain.ErrAlreadyClockedIn):
		return h.errorResponse("Already clocked in.")
	case errors.Is(err, domain.ErrChannelBusy):
		return h.errorResponse("Someone is already clocked in in this channel.")
	case err != nil:
		h.log.Error("clock-in failed", zap.String("user_id", slashCmd.UserID), zap.Error(err))
		return h.errorResponse("Could not clock you in. Ask an admin.")
	}

	when := result.At.In(result.Shift.Location()).Format("15:04")
	text := fmt.Sprintf("Clocked in at %s %s. %s", when, result.Shift.Timezone, result.Note)
	if result.AdHoc {
		text = fmt.Sprintf("Clocked in (ad-hoc) at %s %s.", when, result.Shift.Timezone)
	}

	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func (h *SlackHandler) handleClockOut(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	result, err := h.shiftService.ClockOut(ctx, slashCmd.UserID)
	switch {
	case errors.Is(err, domain.ErrNoActiveShift):
		return h.errorResponse("No active shift found or not clocked in.")
	case err != nil:
		h.log.Error("clock-out failed", zap.String("user_id", slashCmd.UserID), zap.Error(err))
		return h.errorResponse("Could not clock you out. Ask an admin.")
	}

	if result.Status == contract.ClockOutPending {
		return h.clockOutPrompt(result)
	}

	when := result.At.In(result.Shift.Location()).Format("15:04")
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Clocked out at %s %s.", when, result.Shift.Timezone),
	}
}

// clockOutPrompt builds the confirm/cancel buttons carrying the session token.
func (h *SlackHandler) clockOutPrompt(result *contract.ClockOutResult) *slack.Msg {
	text := fmt.Sprintf("⚠️ You are scheduled until *%s*.\nClocking out early may result in a fine.\nChoose an option:", result.EndsAt)

	confirm := slack.NewButtonBlockElement(actionClockOutConfirm, result.Token,
		slack.NewTextBlockObject(slack.PlainTextType, "Confirm clock out", false, false)).
		WithStyle(slack.StylePrimary)
	cancel := slack.NewButtonBlockElement(actionClockOutCancel, result.Token,
		slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false)).
		WithStyle(slack.StyleDanger)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
			slack.NewActionBlock("clockout_decision", confirm, cancel),
		}},
	}
}

func (h *SlackHandler) handleSchedule(ctx context.Context) *slack.Msg {
	shifts, err := h.shiftService.ListUpcoming(ctx, 24*time.Hour)
	if err != nil {
		h.log.Error("schedule lookup failed", zap.Error(err))
		return h.errorResponse("Could not load the schedule.")
	}

	if len(shifts) == 0 {
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "No upcoming shifts in next 24h."}
	}

	var b strings.Builder
	b.WriteString("*Upcoming shifts (next 24h):*\n")
	for _, shift := range shifts {
		loc := shift.Location()
		end := "??"
		if shift.EndAt != nil {
			end = shift.EndAt.In(loc).Format("15:04")
		}
		model := shift.Model
		if model == "" {
			model = domain.DefaultModelLabel
		}
		fmt.Fprintf(&b, "• #%d • *%s* • <@%s> • %s → %s (%s) • <#%s>",
			shift.ID, model, shift.UserID,
			shift.StartAt.In(loc).Format("2006-01-02 15:04"), end, shift.Timezone, shift.ChannelID)
		if shift.VoiceChannelID != "" {
			fmt.Fprintf(&b, " • VC: <#%s>", shift.VoiceChannelID)
		}
		b.WriteString("\n")
	}

	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: strings.TrimSpace(b.String())}
}

func (h *SlackHandler) handleFines(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	targetID := slashCmd.UserID
	if len(cmd.Args) > 0 {
		id, ok := slackcmd.ParseUserMention(cmd.Args[0])
		if !ok {
			return h.errorResponse("Mention the user: `/shift fines @user`")
		}
		targetID = id
	}

	if targetID != slashCmd.UserID && !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("You can only view your own fines.")
	}

	fines, err := h.shiftService.ListFines(ctx, targetID, domain.FinesListLimit)
	if err != nil {
		h.log.Error("fines lookup failed", zap.String("user_id", targetID), zap.Error(err))
		return h.errorResponse("Could not load fines.")
	}

	if len(fines) == 0 {
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("<@%s> has no fines.", targetID)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Latest fines for <@%s>:\n", targetID)
	for _, fine := range fines {
		fmt.Fprintf(&b, "#%d • €%.2f • %s • %s\n",
			fine.ID, fine.Amount, fine.IssuedAt.UTC().Format("2006-01-02 15:04"), fine.Reason)
	}

	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: strings.TrimSpace(b.String())}
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("Admins only.")
	}
	if len(cmd.Args) < 4 {
		return h.errorResponse("Usage: `/shift add @user #channel 2025-08-23T14:00 2025-08-23T20:00 [tz=...] [model=...] [voice=#channel]`")
	}

	userID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.errorResponse("First argument must be a user mention.")
	}
	channelID, ok := slackcmd.ParseChannelMention(cmd.Args[1])
	if !ok {
		return h.errorResponse("Second argument must be a channel mention.")
	}

	params := contract.CreateShiftParams{
		UserID:    userID,
		ChannelID: channelID,
		Start:     cmd.Args[2],
		End:       cmd.Args[3],
	}

	for _, arg := range cmd.Args[4:] {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return h.errorResponse(fmt.Sprintf("Unexpected argument: %s", arg))
		}
		switch key {
		case "tz":
			params.Timezone = value
		case "model":
			params.Model = value
		case "voice":
			voiceID, ok := slackcmd.ParseChannelMention(value)
			if !ok {
				return h.errorResponse("voice= must be a channel mention.")
			}
			params.VoiceChannelID = voiceID
		default:
			return h.errorResponse(fmt.Sprintf("Unknown option: %s", key))
		}
	}

	shift, err := h.shiftService.CreateShift(ctx, params)
	switch {
	case errors.Is(err, domain.ErrInvalidTimezone):
		return h.errorResponse("Invalid timezone.")
	case errors.Is(err, domain.ErrInvalidTime):
		return h.errorResponse("Times must be ISO like 2025-08-23T14:00")
	case errors.Is(err, domain.ErrEndBeforeStart):
		return h.errorResponse("End must be after start.")
	case err != nil:
		h.log.Error("shift creation failed", zap.Error(err))
		return h.errorResponse("Could not create the shift.")
	}

	h.refreshBoard(ctx)

	loc := shift.Location()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("Shift #%d added for <@%s> • %s → %s (%s).",
			shift.ID, shift.UserID,
			shift.StartAt.In(loc).Format("2006-01-02 15:04"),
			shift.EndAt.In(loc).Format("15:04"),
			shift.Timezone),
	}
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("Admins only.")
	}
	if len(cmd.Args) == 0 {
		return h.errorResponse("Usage: `/shift remove <id>`")
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.errorResponse("Shift id must be a number.")
	}

	err = h.shiftService.RemoveShift(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.errorResponse("Shift not found.")
	case err != nil:
		h.log.Error("shift removal failed", zap.Int64("shift_id", id), zap.Error(err))
		return h.errorResponse("Could not remove the shift.")
	}

	h.refreshBoard(ctx)
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Shift #%d removed.", id)}
}

func (h *SlackHandler) handlePardon(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("Admins only.")
	}
	if len(cmd.Args) == 0 {
		return h.errorResponse("Usage: `/shift pardon <id>`")
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.errorResponse("Fine id must be a number.")
	}

	err = h.shiftService.PardonFine(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.errorResponse("Fine not found.")
	case err != nil:
		h.log.Error("pardon failed", zap.Int64("fine_id", id), zap.Error(err))
		return h.errorResponse("Could not pardon the fine.")
	}

	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Fine #%d pardoned.", id)}
}

func (h *SlackHandler) handleSync(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("Admins only.")
	}

	if err := h.scheduler.RunTick(ctx); err != nil {
		h.log.Error("manual tick failed", zap.Error(err))
	}
	h.refreshBoard(ctx)

	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Schedule board refreshed."}
}

func (h *SlackHandler) handleSet(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.isAdmin(slashCmd.UserID) {
		return h.errorResponse("Admins only.")
	}
	if len(cmd.Args) < 2 {
		return h.errorResponse("Usage: `/shift set fine|tz|board|logs <value>`")
	}

	value := cmd.Args[1]
	switch cmd.Args[0] {
	case "fine":
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return h.errorResponse("Fine amount must be a number.")
		}
		if err := h.shiftService.SetFineAmount(ctx, amount); err != nil {
			h.log.Error("set fine failed", zap.Error(err))
			return h.errorResponse("Could not update the fine amount.")
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Fine set to €%.2f.", amount)}

	case "tz":
		err := h.shiftService.SetDefaultTimezone(ctx, value)
		if errors.Is(err, domain.ErrInvalidTimezone) {
			return h.errorResponse("Invalid timezone.")
		}
		if err != nil {
			h.log.Error("set tz failed", zap.Error(err))
			return h.errorResponse("Could not update the timezone.")
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Default timezone set to %s.", value)}

	case "board":
		channelID, ok := slackcmd.ParseChannelMention(value)
		if !ok {
			return h.errorResponse("Mention the channel: `/shift set board #channel`")
		}
		if err := h.shiftService.SetBoardChannel(ctx, channelID); err != nil {
			h.log.Error("set board failed", zap.Error(err))
			return h.errorResponse("Could not update the board channel.")
		}
		h.refreshBoard(ctx)
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Schedule board channel set to <#%s>.", channelID)}

	case "logs":
		channelID, ok := slackcmd.ParseChannelMention(value)
		if !ok {
			return h.errorResponse("Mention the channel: `/shift set logs #channel`")
		}
		if err := h.shiftService.SetLogsChannel(ctx, channelID); err != nil {
			h.log.Error("set logs failed", zap.Error(err))
			return h.errorResponse("Could not update the logs channel.")
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: fmt.Sprintf("Shift logs channel set to <#%s>.", channelID)}

	default:
		return h.errorResponse("Unknown setting. Use fine, tz, board or logs.")
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: slackcmd.GetHelpText()}
}

func (h *SlackHandler) refreshBoard(ctx context.Context) {
	if err := h.boardService.Refresh(ctx); err != nil {
		h.log.Error("board refresh failed", zap.Error(err))
	}
}

func (h *SlackHandler) isAdmin(userID string) bool {
	user, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		h.log.Warn("admin check failed", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return user.IsAdmin || user.IsOwner
}

func (h *SlackHandler) errorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + text,
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("response encoding failed", zap.Error(err))
	}
}
