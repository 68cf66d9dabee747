package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dmarkovic/shiftbot/internal/handlers"
	"github.com/dmarkovic/shiftbot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// SigningSecret signs every request built by this package.
const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	ShiftServiceMock *mocks.MockShiftService
	BoardServiceMock *mocks.MockBoardService
	SchedulerMock    *mocks.MockSchedulerService
	SlackClientMock  *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ShiftServiceMock: mocks.NewMockShiftService(ctrl),
		BoardServiceMock: mocks.NewMockBoardService(ctrl),
		SchedulerMock:    mocks.NewMockSchedulerService(ctrl),
		SlackClientMock:  mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.New(m.SlackClientMock, m.ShiftServiceMock, m.BoardServiceMock, m.SchedulerMock, SigningSecret, zap.NewNop())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, teamID string) *http.Request {
	t.Helper()

	// Form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"test-channel"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode())
}

// CreateInteractionRequest creates a signed block-action callback carrying the
// given action id and value for the given user.
func CreateInteractionRequest(t *testing.T, actionID, value, userID string) *http.Request {
	t.Helper()

	payload := fmt.Sprintf(`{
		"type": "block_actions",
		"user": {"id": %q},
		"actions": [{
			"type": "button",
			"block_id": "clockout_decision",
			"action_id": %q,
			"value": %q
		}]
	}`, userID, actionID, value)

	form := url.Values{"payload": {payload}}
	return signedRequest(t, "/slack/interactions", form.Encode())
}

func signedRequest(t *testing.T, path, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
