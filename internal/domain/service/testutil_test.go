package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dmarkovic/shiftbot/internal/database"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/mocks"
	"github.com/slack-go/slack"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// testClock is an adjustable time source shared by the services under test.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time {
	return c.current
}

func (c *testClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

type testEnv struct {
	dm    contract.DataManager
	slack *mocks.MockSlackClient
	svc   *Instance
	clock *testClock
}

func setupService(t *testing.T, ctrl *gomock.Controller, now time.Time) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	mockSlack := mocks.NewMockSlackClient(ctrl)
	clock := &testClock{current: now.UTC()}

	svc := NewInstance(dm, mockSlack, zap.NewNop(), "T123456789")
	svc.Shift.now = clock.Now
	svc.Scheduler.now = clock.Now
	svc.Board.now = clock.Now

	return &testEnv{dm: dm, slack: mockSlack, svc: svc, clock: clock}
}

// allowAmbientSlack registers permissive expectations for the side-channel
// Slack traffic (notices, presence lookups, audit posts) so tests can focus
// on state transitions.
func (e *testEnv) allowAmbientSlack() {
	e.slack.EXPECT().PostMessage(gomock.Any(), gomock.Any()).Return("", "", nil).AnyTimes()
	e.slack.EXPECT().GetUserInfo(gomock.Any()).Return(&slack.User{Name: "worker"}, nil).AnyTimes()
	e.slack.EXPECT().GetConversationInfo(gomock.Any()).Return(nil, errors.New("channel_not_found")).AnyTimes()
	e.slack.EXPECT().GetConversations(gomock.Any()).Return(nil, "", nil).AnyTimes()
	e.slack.EXPECT().RenameConversation(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	e.slack.EXPECT().OpenConversation(gomock.Any()).Return(dmChannel("D123456789"), false, false, nil).AnyTimes()
	e.slack.EXPECT().UpdateMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", "", nil).AnyTimes()
}

func dmChannel(id string) *slack.Channel {
	ch := &slack.Channel{}
	ch.ID = id
	return ch
}
