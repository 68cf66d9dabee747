package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/contract"
	"github.com/dmarkovic/shiftbot/internal/domain/entity"
)

type fineRepo struct {
	db dbConn
}

func newFineRepo(db dbConn) contract.FineRepo {
	return &fineRepo{db: db}
}

func (r *fineRepo) Create(fine *entity.Fine) error {
	query := `
		INSERT INTO fines (team_id, user_id, amount, reason, issued_at, shift_id, model)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var shiftID interface{}
	if fine.ShiftID != nil {
		shiftID = *fine.ShiftID
	}
	if fine.IssuedAt.IsZero() {
		fine.IssuedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		fine.TeamID,
		fine.UserID,
		fine.Amount,
		fine.Reason,
		fine.IssuedAt.UTC(),
		shiftID,
		nullString(fine.Model),
	)
	if err != nil {
		return fmt.Errorf("failed to create fine: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	fine.ID = id
	return nil
}

func (r *fineRepo) Delete(id int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM fines WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete fine: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *fineRepo) ListByUser(userID string, limit int) ([]*entity.Fine, error) {
	query := `
		SELECT id, team_id, user_id, amount, reason, issued_at, shift_id, model
		FROM fines
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}
	defer rows.Close()

	var fines []*entity.Fine
	for rows.Next() {
		fine := &entity.Fine{}
		var shiftID sql.NullInt64
		var model sql.NullString
		err := rows.Scan(
			&fine.ID,
			&fine.TeamID,
			&fine.UserID,
			&fine.Amount,
			&fine.Reason,
			&fine.IssuedAt,
			&shiftID,
			&model,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fine: %w", err)
		}

		if shiftID.Valid {
			id := shiftID.Int64
			fine.ShiftID = &id
		}
		fine.Model = model.String
		fines = append(fines, fine)
	}

	return fines, rows.Err()
}
