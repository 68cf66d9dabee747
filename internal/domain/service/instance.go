package service

import (
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Shift     *shiftService
	Scheduler *schedulerService
	Board     *boardService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, logger *zap.Logger, teamID string) *Instance {
	pres := &presence{slack: slackClient, log: logger}
	audit := &auditLog{dm: dm, slack: slackClient, log: logger}

	shiftSvc := &shiftService{
		dm:            dm,
		slack:         slackClient,
		log:           logger,
		teamID:        teamID,
		presence:      pres,
		audit:         audit,
		confirmations: newClockOutConfirmations(domain.ConfirmTimeout),
		now:           time.Now,
	}
	shiftSvc.confirmations.setExpireFunc(shiftSvc.expireClockOut)

	return &Instance{
		Shift: shiftSvc,
		Scheduler: &schedulerService{
			dm:       dm,
			slack:    slackClient,
			log:      logger,
			interval: domain.TickInterval,
			stopChan: make(chan struct{}),
			now:      time.Now,
		},
		Board: &boardService{
			dm:    dm,
			slack: slackClient,
			log:   logger,
			now:   time.Now,
		},
	}
}
