package database

import (
	"context"
	"fmt"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	shiftRepo      contract.ShiftRepo
	attendanceRepo contract.AttendanceRepo
	fineRepo       contract.FineRepo
	eventRepo      contract.EventRepo
	settingsRepo   contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.shiftRepo = newShiftRepo(db.conn)
	i.attendanceRepo = newAttendanceRepo(db.conn)
	i.fineRepo = newFineRepo(db.conn)
	i.eventRepo = newEventRepo(db.conn)
	i.settingsRepo = newSettingsRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		shiftRepo:      newShiftRepo(db),
		attendanceRepo: newAttendanceRepo(db),
		fineRepo:       newFineRepo(db),
		eventRepo:      newEventRepo(db),
		settingsRepo:   newSettingsRepo(db),
	}
}

func (i *instance) Shift() contract.ShiftRepo {
	return i.shiftRepo
}

func (i *instance) Attendance() contract.AttendanceRepo {
	return i.attendanceRepo
}

func (i *instance) Fine() contract.FineRepo {
	return i.fineRepo
}

func (i *instance) Event() contract.EventRepo {
	return i.eventRepo
}

func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
