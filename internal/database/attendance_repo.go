package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

type attendanceRepo struct {
	db dbConn
}

func newAttendanceRepo(db dbConn) contract.AttendanceRepo {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(attendance *entity.Attendance) error {
	query := `
		INSERT INTO attendance (user_id, shift_id, clockin_at, clockout_at)
		VALUES (?, ?, ?, ?)
	`

	var clockIn, clockOut interface{}
	if attendance.ClockInAt != nil {
		clockIn = attendance.ClockInAt.UTC()
	}
	if attendance.ClockOutAt != nil {
		clockOut = attendance.ClockOutAt.UTC()
	}

	result, err := r.db.Exec(query, attendance.UserID, attendance.ShiftID, clockIn, clockOut)
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	attendance.ID = id
	return nil
}

// GetByShiftID returns the most recently created attendance row for the shift.
func (r *attendanceRepo) GetByShiftID(shiftID int64) (*entity.Attendance, error) {
	attendance := &entity.Attendance{}
	query := `
		SELECT id, user_id, shift_id, clockin_at, clockout_at
		FROM attendance
		WHERE shift_id = ?
		ORDER BY id DESC
		LIMIT 1
	`

	var clockIn, clockOut sql.NullTime
	err := r.db.QueryRow(query, shiftID).Scan(
		&attendance.ID,
		&attendance.UserID,
		&attendance.ShiftID,
		&clockIn,
		&clockOut,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	if clockIn.Valid {
		t := clockIn.Time
		attendance.ClockInAt = &t
	}
	if clockOut.Valid {
		t := clockOut.Time
		attendance.ClockOutAt = &t
	}

	return attendance, nil
}

func (r *attendanceRepo) SetClockIn(shiftID int64, at time.Time) error {
	_, err := r.db.Exec(`UPDATE attendance SET clockin_at = ? WHERE shift_id = ?`, at.UTC(), shiftID)
	if err != nil {
		return fmt.Errorf("failed to set clock-in: %w", err)
	}

	return nil
}

func (r *attendanceRepo) SetClockOut(shiftID int64, at time.Time) error {
	_, err := r.db.Exec(`UPDATE attendance SET clockout_at = ? WHERE shift_id = ?`, at.UTC(), shiftID)
	if err != nil {
		return fmt.Errorf("failed to set clock-out: %w", err)
	}

	return nil
}

// IsChannelActive reports whether any shift in the channel has an attendance
// row that is clocked in and not yet clocked out.
func (r *attendanceRepo) IsChannelActive(channelID string) (bool, error) {
	query := `
		SELECT 1
		FROM attendance a
		JOIN shifts s ON s.id = a.shift_id
		WHERE s.channel_id = ? AND a.clockin_at IS NOT NULL AND a.clockout_at IS NULL
		LIMIT 1
	`

	var one int
	err := r.db.QueryRow(query, channelID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check channel activity: %w", err)
	}

	return true, nil
}
