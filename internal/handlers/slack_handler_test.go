package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"github.com/dmarkovic/shiftbot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)
	var msg slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &msg))
	return msg
}

func testShift(id int64) *entity.Shift {
	end := time.Date(2025, 8, 23, 20, 0, 0, 0, time.UTC)
	return &entity.Shift{
		ID:        id,
		TeamID:    "T123456789",
		UserID:    "U123456789",
		ChannelID: "C123456789",
		StartAt:   time.Date(2025, 8, 23, 14, 0, 0, 0, time.UTC),
		EndAt:     &end,
		Timezone:  "UTC",
		Model:     "Alice",
	}
}

func expectAdmin(m test.ServiceMocks, userID string, admin bool) {
	m.SlackClientMock.EXPECT().
		GetUserInfo(userID).
		Return(&slack.User{IsAdmin: admin}, nil).Times(1)
}

func TestSlackHandler_HandleSlashCommand_ClockIn(t *testing.T) {
	tests := []struct {
		name          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, msg slack.Msg)
	}{
		{
			name: "Should clock in on a scheduled shift",
			buildMocks: func(m test.ServiceMocks) {
				m.ShiftServiceMock.EXPECT().
					ClockIn(gomock.Any(), "U123456789", "C123456789").
					Return(&contract.ClockInResult{
						Shift: testShift(1),
						At:    time.Date(2025, 8, 23, 14, 5, 0, 0, time.UTC),
						Note:  "Late: 5 min",
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Clocked in at 14:05 UTC")
				assert.Contains(t, msg.Text, "Late: 5 min")
			},
		},
		{
			name: "Should report ad-hoc clock-in",
			buildMocks: func(m test.ServiceMocks) {
				m.ShiftServiceMock.EXPECT().
					ClockIn(gomock.Any(), "U123456789", "C123456789").
					Return(&contract.ClockInResult{
						Shift: testShift(2),
						At:    time.Date(2025, 8, 23, 15, 0, 0, 0, time.UTC),
						AdHoc: true,
						Note:  "Ad-hoc (unscheduled) clock-in",
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Contains(t, msg.Text, "ad-hoc")
			},
		},
		{
			name: "Should reject double clock-in",
			buildMocks: func(m test.ServiceMocks) {
				m.ShiftServiceMock.EXPECT().
					ClockIn(gomock.Any(), "U123456789", "C123456789").
					Return(nil, domain.ErrAlreadyClockedIn).Times(1)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Contains(t, msg.Text, "❌ Already clocked in.")
			},
		},
		{
			name: "Should reject a busy channel",
			buildMocks: func(m test.ServiceMocks) {
				m.ShiftServiceMock.EXPECT().
					ClockIn(gomock.Any(), "U123456789", "C123456789").
					Return(nil, domain.ErrChannelBusy).Times(1)
			},
			checkResponse: func(t *testing.T, msg slack.Msg) {
				assert.Contains(t, msg.Text, "❌ Someone is already clocked in in this channel.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/shift", "clockin", "C123456789", "U123456789", "T123456789")
			resp := test.CreateTestRecorder()
			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, decodeMsg(t, resp))
		})
	}
}

func TestSlackHandler_HandleSlashCommand_ClockOut(t *testing.T) {
	t.Run("Should clock out directly after the scheduled end", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ShiftServiceMock.EXPECT().
			ClockOut(gomock.Any(), "U123456789").
			Return(&contract.ClockOutResult{
				Status: contract.ClockOutDone,
				Shift:  testShift(1),
				At:     time.Date(2025, 8, 23, 20, 30, 0, 0, time.UTC),
			}, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "clockout", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Clocked out at 20:30 UTC")
	})

	t.Run("Should prompt with buttons on early clock-out", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ShiftServiceMock.EXPECT().
			ClockOut(gomock.Any(), "U123456789").
			Return(&contract.ClockOutResult{
				Status: contract.ClockOutPending,
				Shift:  testShift(1),
				Token:  "tok-123",
				EndsAt: "20:00 (UTC)",
			}, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "clockout", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "scheduled until *20:00 (UTC)*")
		require.Len(t, msg.Blocks.BlockSet, 2, "Expected a section and an action block")
	})

	t.Run("Should report missing active shift", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ShiftServiceMock.EXPECT().
			ClockOut(gomock.Any(), "U123456789").
			Return(nil, domain.ErrNoActiveShift).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "out", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ No active shift found or not clocked in.")
	})
}

func TestSlackHandler_HandleSlashCommand_Schedule(t *testing.T) {
	t.Run("Should list upcoming shifts", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ShiftServiceMock.EXPECT().
			ListUpcoming(gomock.Any(), 24*time.Hour).
			Return([]*entity.Shift{testShift(7)}, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "schedule", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Upcoming shifts")
		assert.Contains(t, msg.Text, "#7")
		assert.Contains(t, msg.Text, "Alice")
	})

	t.Run("Should report empty schedule", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.ShiftServiceMock.EXPECT().
			ListUpcoming(gomock.Any(), 24*time.Hour).
			Return(nil, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "schedule", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "No upcoming shifts in next 24h.")
	})
}

func TestSlackHandler_HandleSlashCommand_Fines(t *testing.T) {
	t.Run("Should list own fines without admin check", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		shiftID := int64(1)
		m.ShiftServiceMock.EXPECT().
			ListFines(gomock.Any(), "U123456789", domain.FinesListLimit).
			Return([]*entity.Fine{{
				ID:       3,
				UserID:   "U123456789",
				Amount:   20,
				Reason:   "Late for shift starting 2025-08-23T14:00:00Z",
				IssuedAt: time.Date(2025, 8, 23, 14, 15, 0, 0, time.UTC),
				ShiftID:  &shiftID,
			}}, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "fines", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "€20.00")
		assert.Contains(t, msg.Text, "Late for shift")
	})

	t.Run("Should deny viewing another user's fines without admin", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "U123456789", false)

		req := test.CreateSlackRequest(t, "/shift", "fines <@U999|other>", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ You can only view your own fines.")
	})

	t.Run("Should let admin view another user's fines", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "U123456789", true)
		m.ShiftServiceMock.EXPECT().
			ListFines(gomock.Any(), "U999", domain.FinesListLimit).
			Return(nil, nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "fines <@U999|other>", "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "<@U999> has no fines.")
	})
}

func TestSlackHandler_HandleSlashCommand_Add(t *testing.T) {
	t.Run("Should create a shift and refresh the board", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().
			CreateShift(gomock.Any(), contract.CreateShiftParams{
				UserID:    "U123456789",
				ChannelID: "C123456789",
				Start:     "2025-08-23T14:00",
				End:       "2025-08-23T20:00",
				Timezone:  "UTC",
				Model:     "Alice",
			}).
			Return(testShift(5), nil).Times(1)
		m.BoardServiceMock.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)

		text := "add <@U123456789|worker> <#C123456789|room> 2025-08-23T14:00 2025-08-23T20:00 tz=UTC model=Alice"
		req := test.CreateSlackRequest(t, "/shift", text, "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Shift #5 added for <@U123456789>")
	})

	t.Run("Should reject non-admin", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "U123456789", false)

		text := "add <@U123456789> <#C123456789> 2025-08-23T14:00 2025-08-23T20:00"
		req := test.CreateSlackRequest(t, "/shift", text, "C123456789", "U123456789", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ Admins only.")
	})

	t.Run("Should surface validation errors", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().
			CreateShift(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrEndBeforeStart).Times(1)

		text := "add <@U123456789> <#C123456789> 2025-08-23T20:00 2025-08-23T14:00"
		req := test.CreateSlackRequest(t, "/shift", text, "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ End must be after start.")
	})

	t.Run("Should require a user mention", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)

		text := "add worker <#C123456789> 2025-08-23T14:00 2025-08-23T20:00"
		req := test.CreateSlackRequest(t, "/shift", text, "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ First argument must be a user mention.")
	})
}

func TestSlackHandler_HandleSlashCommand_Remove(t *testing.T) {
	t.Run("Should remove a shift", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().RemoveShift(gomock.Any(), int64(7)).Return(nil).Times(1)
		m.BoardServiceMock.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "remove 7", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Shift #7 removed.")
	})

	t.Run("Should report unknown shift", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().RemoveShift(gomock.Any(), int64(99)).Return(domain.ErrNotFound).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "rm 99", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ Shift not found.")
	})
}

func TestSlackHandler_HandleSlashCommand_Pardon(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	expectAdmin(m, "UADMIN", true)
	m.ShiftServiceMock.EXPECT().PardonFine(gomock.Any(), int64(3)).Return(nil).Times(1)

	req := test.CreateSlackRequest(t, "/shift", "pardon 3", "C123456789", "UADMIN", "T123456789")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	msg := decodeMsg(t, resp)
	assert.Contains(t, msg.Text, "Fine #3 pardoned.")
}

func TestSlackHandler_HandleSlashCommand_Sync(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	expectAdmin(m, "UADMIN", true)
	m.SchedulerMock.EXPECT().RunTick(gomock.Any()).Return(nil).Times(1)
	m.BoardServiceMock.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)

	req := test.CreateSlackRequest(t, "/shift", "sync", "C123456789", "UADMIN", "T123456789")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	msg := decodeMsg(t, resp)
	assert.Contains(t, msg.Text, "Schedule board refreshed.")
}

func TestSlackHandler_HandleSlashCommand_Set(t *testing.T) {
	t.Run("Should set the fine amount", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().SetFineAmount(gomock.Any(), 25.0).Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "set fine 25", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Fine set to €25.00.")
	})

	t.Run("Should set the default timezone", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().SetDefaultTimezone(gomock.Any(), "Europe/Zagreb").Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "set tz Europe/Zagreb", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Default timezone set to Europe/Zagreb.")
	})

	t.Run("Should set the board channel and refresh", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().SetBoardChannel(gomock.Any(), "C777").Return(nil).Times(1)
		m.BoardServiceMock.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "set board <#C777|board>", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Schedule board channel set to <#C777>.")
	})

	t.Run("Should set the logs channel", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)
		m.ShiftServiceMock.EXPECT().SetLogsChannel(gomock.Any(), "C888").Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/shift", "set logs <#C888|logs>", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "Shift logs channel set to <#C888>.")
	})

	t.Run("Should reject unknown setting", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		expectAdmin(m, "UADMIN", true)

		req := test.CreateSlackRequest(t, "/shift", "set color red", "C123456789", "UADMIN", "T123456789")
		resp := test.CreateTestRecorder()
		handler.HandleSlashCommand(resp, req)

		msg := decodeMsg(t, resp)
		assert.Contains(t, msg.Text, "❌ Unknown setting.")
	})
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/shift", "help", "C123456789", "U123456789", "T123456789")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	msg := decodeMsg(t, resp)
	assert.Contains(t, msg.Text, "Available commands")
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/shift", "dance", "C123456789", "U123456789", "T123456789")
	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	msg := decodeMsg(t, resp)
	assert.Contains(t, msg.Text, "❌ unknown command: dance")
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/shift", "clockin", "C123456789", "U123456789", "T123456789")
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")

	resp := test.CreateTestRecorder()
	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
