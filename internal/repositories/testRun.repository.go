package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

type TestRunRepository interface {
	Create(ctx context.Context, testRun *TestRun) error
	GetAll(ctx context.Context) ([]*TestRun, error)
	GetByUserName(ctx context.Context, userName string) ([]*TestRun, error)
	Delete(ctx context.Context, id string) error
}

type testRunRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTestRun(db database.DB) TestRunRepository {
	return &testRunRepository{
		db:  db,
		log: logger.New("testRunRepository"),
	}
}

func (r *testRunRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.SQLWithContext(ctx)
}

func (r *testRunRepository) Create(ctx context.Context, testRun *TestRun) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(testRun).Error; err != nil {
		return log.Err("failed to create test run", err, "testRun", testRun)
	}

	return nil
}

// GetAll returns every stored run. No ORDER BY is applied; callers must
// not rely on the returned order.
func (r *testRunRepository) GetAll(ctx context.Context) ([]*TestRun, error) {
	log := r.log.Function("GetAll")

	var testRuns []*TestRun
	if err := r.getDB(ctx).Find(&testRuns).Error; err != nil {
		return nil, log.Err("failed to get all test runs", err)
	}

	return testRuns, nil
}

// GetByUserName filters by exact, case-sensitive match. An unknown name
// yields an empty slice, not an error.
func (r *testRunRepository) GetByUserName(ctx context.Context, userName string) ([]*TestRun, error) {
	log := r.log.Function("GetByUserName")

	var testRuns []*TestRun
	if err := r.getDB(ctx).Where("user_name = ?", userName).Find(&testRuns).Error; err != nil {
		return nil, log.Err("failed to get test runs by user name", err, "userName", userName)
	}

	return testRuns, nil
}

// Delete is idempotent: a missing id affects zero rows and is still
// success.
func (r *testRunRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&TestRun{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete test run", err, "id", id)
	}

	return nil
}
