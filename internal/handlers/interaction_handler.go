package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	actionClockOutConfirm = "clockout_confirm"
	actionClockOutCancel  = "clockout_cancel"
)

// HandleInteraction receives block-action callbacks, currently only the early
// clock-out confirm/cancel buttons. The button value carries the session
// token issued by the shift service.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(values.Get("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions || len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	if action.ActionID != actionClockOutConfirm && action.ActionID != actionClockOutCancel {
		w.WriteHeader(http.StatusOK)
		return
	}

	confirmed := action.ActionID == actionClockOutConfirm
	result, err := h.shiftService.ResolveClockOut(r.Context(), action.Value, callback.User.ID, confirmed)
	switch {
	case errors.Is(err, domain.ErrNotYourConfirmation):
		// only the original requester may answer; ignore everyone else
		w.WriteHeader(http.StatusOK)
		return
	case errors.Is(err, domain.ErrConfirmationExpired):
		h.respondReplacement(w, "⌛ Clock-out request timed out.")
		return
	case err != nil:
		h.log.Error("clock-out resolution failed", zap.String("user_id", callback.User.ID), zap.Error(err))
		h.respondReplacement(w, "❌ Could not clock you out. Ask an admin.")
		return
	}

	if result.Status == contract.ClockOutCancelled {
		h.respondReplacement(w, "❌ Clock-out cancelled.")
		return
	}

	when := result.At.In(result.Shift.Location()).Format("15:04")
	h.respondReplacement(w, fmt.Sprintf("Clocked out at %s %s.", when, result.Shift.Timezone))
}

// respondReplacement replaces the button prompt with a final outcome line.
func (h *SlackHandler) respondReplacement(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"response_type":    slack.ResponseTypeEphemeral,
		"replace_original": true,
		"text":             text,
	})
	if err != nil {
		h.log.Error("response encoding failed", zap.Error(err))
	}
}
