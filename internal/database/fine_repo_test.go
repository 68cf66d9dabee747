package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmarkovic/shiftbot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFineRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newFineRepo(db.conn)
	shift := createTestShift(t, db, "U1", "C1", time.Date(2025, 8, 23, 14, 0, 0, 0, time.UTC))

	fine := &entity.Fine{
		TeamID:  "T123456789",
		UserID:  "U1",
		Amount:  20,
		Reason:  "Late for shift starting 2025-08-23T14:00:00Z",
		ShiftID: &shift.ID,
		Model:   "Alice",
	}

	err := repo.Create(fine)
	require.NoError(t, err, "Failed to create fine")

	assert.NotZero(t, fine.ID, "Expected fine ID to be set after creation")
	assert.False(t, fine.IssuedAt.IsZero(), "Expected issued_at to default to now")
}

func TestFineRepository_ListByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newFineRepo(db.conn)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&entity.Fine{
			TeamID: "T1",
			UserID: "U1",
			Amount: 20,
			Reason: fmt.Sprintf("fine %d", i),
		}))
	}
	require.NoError(t, repo.Create(&entity.Fine{
		TeamID: "T1",
		UserID: "U2",
		Amount: 20,
		Reason: "someone else",
	}))

	fines, err := repo.ListByUser("U1", 25)
	require.NoError(t, err, "Failed to list fines")
	require.Len(t, fines, 3)

	assert.Equal(t, "fine 2", fines[0].Reason, "Expected newest fine first")
	assert.Equal(t, "fine 0", fines[2].Reason)

	// Limit applies
	fines, err = repo.ListByUser("U1", 2)
	require.NoError(t, err)
	assert.Len(t, fines, 2)

	// Unknown user has no fines
	fines, err = repo.ListByUser("UNKNOWN", 25)
	require.NoError(t, err)
	assert.Empty(t, fines)
}

func TestFineRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newFineRepo(db.conn)

	fine := &entity.Fine{TeamID: "T1", UserID: "U1", Amount: 20, Reason: "late"}
	require.NoError(t, repo.Create(fine))

	affected, err := repo.Delete(fine.ID)
	require.NoError(t, err, "Failed to delete fine")
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(fine.ID)
	require.NoError(t, err)
	assert.Zero(t, affected, "Expected no rows affected on second delete")
}
