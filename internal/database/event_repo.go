package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

type eventRepo struct {
	db dbConn
}

func newEventRepo(db dbConn) contract.EventRepo {
	return &eventRepo{db: db}
}

func (r *eventRepo) HasFired(shiftID int64, kind entity.EventKind) (bool, error) {
	var one int
	err := r.db.QueryRow(
		`SELECT 1 FROM shift_events WHERE shift_id = ? AND kind = ?`,
		shiftID, string(kind),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check shift event: %w", err)
	}

	return true, nil
}

// MarkFired records that the event fired. The UNIQUE(shift_id, kind)
// constraint plus INSERT OR IGNORE makes duplicate marks a no-op.
func (r *eventRepo) MarkFired(shiftID int64, kind entity.EventKind, at time.Time) error {
	_, err := r.db.Exec(
		`INSERT OR IGNORE INTO shift_events (shift_id, kind, fired_at) VALUES (?, ?, ?)`,
		shiftID, string(kind), at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark shift event: %w", err)
	}

	return nil
}
