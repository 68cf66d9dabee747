package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

const shiftColumns = `id, team_id, user_id, channel_id, start_at, end_at, timezone, model, voice_channel_id, created_at`

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (team_id, user_id, channel_id, start_at, end_at, timezone, model, voice_channel_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var endAt interface{}
	if shift.EndAt != nil {
		endAt = shift.EndAt.UTC()
	}
	if shift.CreatedAt.IsZero() {
		shift.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		shift.TeamID,
		shift.UserID,
		shift.ChannelID,
		shift.StartAt.UTC(),
		endAt,
		shift.Timezone,
		nullString(shift.Model),
		nullString(shift.VoiceChannelID),
		shift.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	shift.ID = id
	return nil
}

func (r *shiftRepo) Delete(id int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shift: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *shiftRepo) GetByID(id int64) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`

	shift, err := scanShift(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

func (r *shiftRepo) ListInWindow(from, to time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE start_at BETWEEN ? AND ?
		ORDER BY start_at ASC
	`

	rows, err := r.db.Query(query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

func (r *shiftRepo) ListForBoard(from, to time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE start_at BETWEEN ? AND ? AND model IS NOT NULL
		ORDER BY start_at ASC
	`

	rows, err := r.db.Query(query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list board shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// NearestForUserOnDay returns the user's shift starting on the same UTC
// calendar day as the reference instant, closest to it in absolute time.
func (r *shiftRepo) NearestForUserOnDay(userID string, reference time.Time) (*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE user_id = ? AND date(start_at) = date(?)
		ORDER BY ABS(strftime('%s', start_at) - strftime('%s', ?)) ASC
		LIMIT 1
	`

	ref := reference.UTC()
	shift, err := scanShift(r.db.QueryRow(query, userID, ref, ref))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nearest shift: %w", err)
	}

	return shift, nil
}

// ActiveForUser returns the user's most recent shift whose attendance is
// clocked in but not yet clocked out.
func (r *shiftRepo) ActiveForUser(userID string) (*entity.Shift, error) {
	query := `
		SELECT sh.id, sh.team_id, sh.user_id, sh.channel_id, sh.start_at, sh.end_at,
			sh.timezone, sh.model, sh.voice_channel_id, sh.created_at
		FROM shifts sh
		JOIN attendance a ON a.shift_id = sh.id
		WHERE sh.user_id = ? AND a.clockin_at IS NOT NULL AND a.clockout_at IS NULL
		ORDER BY sh.start_at DESC
		LIMIT 1
	`

	shift, err := scanShift(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	return shift, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*entity.Shift, error) {
	shift := &entity.Shift{}
	var endAt sql.NullTime
	var model, voiceChannelID sql.NullString

	err := row.Scan(
		&shift.ID,
		&shift.TeamID,
		&shift.UserID,
		&shift.ChannelID,
		&shift.StartAt,
		&endAt,
		&shift.Timezone,
		&model,
		&voiceChannelID,
		&shift.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endAt.Valid {
		t := endAt.Time
		shift.EndAt = &t
	}
	shift.Model = model.String
	shift.VoiceChannelID = voiceChannelID.String

	return shift, nil
}

func collectShifts(rows *sql.Rows) ([]*entity.Shift, error) {
	var shifts []*entity.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
