package service

import (
	"sync"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"github.com/google/uuid"
)

// pendingClockOut is one early clock-out awaiting confirmation. Only the
// requesting user may resolve it.
type pendingClockOut struct {
	Token       string
	UserID      string
	Shift       *entity.Shift
	RequestedAt time.Time

	timer *time.Timer
}

// clockOutConfirmations holds the short-lived confirmation sessions keyed by
// random token. Sessions expire after ttl without blocking any handler.
type clockOutConfirmations struct {
	mu       sync.Mutex
	ttl      time.Duration
	pending  map[string]*pendingClockOut
	onExpire func(*pendingClockOut)
}

func newClockOutConfirmations(ttl time.Duration) *clockOutConfirmations {
	return &clockOutConfirmations{
		ttl:     ttl,
		pending: make(map[string]*pendingClockOut),
	}
}

func (c *clockOutConfirmations) setExpireFunc(fn func(*pendingClockOut)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = fn
}

func (c *clockOutConfirmations) Add(userID string, shift *entity.Shift, at time.Time) *pendingClockOut {
	p := &pendingClockOut{
		Token:       uuid.NewString(),
		UserID:      userID,
		Shift:       shift,
		RequestedAt: at,
	}

	c.mu.Lock()
	c.pending[p.Token] = p
	c.mu.Unlock()

	p.timer = time.AfterFunc(c.ttl, func() { c.expire(p.Token) })
	return p
}

// Claim removes and returns the session. A foreign user gets
// ErrNotYourConfirmation and the session stays claimable by its owner.
func (c *clockOutConfirmations) Claim(token, userID string) (*pendingClockOut, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[token]
	if !ok {
		return nil, domain.ErrConfirmationExpired
	}
	if p.UserID != userID {
		return nil, domain.ErrNotYourConfirmation
	}

	delete(c.pending, token)
	if p.timer != nil {
		p.timer.Stop()
	}
	return p, nil
}

func (c *clockOutConfirmations) expire(token string) {
	c.mu.Lock()
	p, ok := c.pending[token]
	if ok {
		delete(c.pending, token)
	}
	fn := c.onExpire
	c.mu.Unlock()

	if ok && fn != nil {
		fn(p)
	}
}
