package repositories

import (
	"context"
	"server/config"
	"server/internal/database"
	. "server/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.DB {
	t.Helper()

	db, err := database.New(config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func sampleTestRun(userName string) *TestRun {
	return &TestRun{
		UserName:  userName,
		UserEmail: userName + "@x.com",
		Chip:      "C1",
		Snr:       "1,2,3",
		NumTests:  3,
		Date:      "2024-01-01",
		StartTime: "10:00",
		EndTime:   "10:05",
		Status:    "complete",
	}
}

func TestTestRunRepository_CreateAssignsID(t *testing.T) {
	repo := NewTestRun(newTestDB(t))
	ctx := context.Background()

	testRun := sampleTestRun("alice")
	require.NoError(t, repo.Create(ctx, testRun))
	assert.NotEmpty(t, testRun.ID)

	testRuns, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, testRuns, 1)
	assert.Equal(t, testRun.ID, testRuns[0].ID)
	assert.Equal(t, "alice", testRuns[0].UserName)
	assert.Equal(t, "1,2,3", testRuns[0].Snr)
}

func TestTestRunRepository_GetByUserName_ExactMatch(t *testing.T) {
	repo := NewTestRun(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleTestRun("alice")))
	require.NoError(t, repo.Create(ctx, sampleTestRun("alice")))
	require.NoError(t, repo.Create(ctx, sampleTestRun("bob")))

	testRuns, err := repo.GetByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, testRuns, 2)
	for _, testRun := range testRuns {
		assert.Equal(t, "alice", testRun.UserName)
	}

	// Case-sensitive: "Alice" is not "alice".
	testRuns, err = repo.GetByUserName(ctx, "Alice")
	require.NoError(t, err)
	assert.Empty(t, testRuns)
}

func TestTestRunRepository_GetByUserName_Unknown(t *testing.T) {
	repo := NewTestRun(newTestDB(t))

	testRuns, err := repo.GetByUserName(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, testRuns)
}

func TestTestRunRepository_Delete_RemovesRow(t *testing.T) {
	repo := NewTestRun(newTestDB(t))
	ctx := context.Background()

	testRun := sampleTestRun("alice")
	require.NoError(t, repo.Create(ctx, testRun))

	require.NoError(t, repo.Delete(ctx, testRun.ID))

	testRuns, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, testRuns)
}

func TestTestRunRepository_Delete_UnknownIDIsSuccess(t *testing.T) {
	repo := NewTestRun(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleTestRun("alice")))

	assert.NoError(t, repo.Delete(ctx, "no-such-id"))

	testRuns, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, testRuns, 1, "deleting an unknown id must not touch other rows")
}
