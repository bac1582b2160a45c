package testController

import (
	"context"
	"server/internal/apperrors"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
)

// Notifier pushes table-change events to connected clients. Declared here
// to avoid an import cycle with the websocket manager.
type Notifier interface {
	Broadcast(eventType string, data any)
}

type TestController struct {
	testRunRepo repositories.TestRunRepository
	notifier    Notifier
	log         logger.Logger
}

func New(testRunRepo repositories.TestRunRepository, notifier Notifier) *TestController {
	return &TestController{
		testRunRepo: testRunRepo,
		notifier:    notifier,
		log:         logger.New("TestController"),
	}
}

// CreateTest validates, maps and persists one run. Validation failures
// happen before the store is touched, so there is never a partial write.
func (c *TestController) CreateTest(ctx context.Context, req *CreateTestRunRequest) (*TestRun, error) {
	log := c.log.Function("CreateTest")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	testRun := req.ToTestRun()
	if err := c.testRunRepo.Create(ctx, testRun); err != nil {
		return nil, &apperrors.StoreError{Op: "create test", Err: err}
	}

	log.Info("created test run", "id", testRun.ID, "userName", testRun.UserName)
	c.notifier.Broadcast("test_created", testRun)

	return testRun, nil
}

func (c *TestController) ListTests(ctx context.Context) ([]*TestRun, error) {
	testRuns, err := c.testRunRepo.GetAll(ctx)
	if err != nil {
		return nil, &apperrors.StoreError{Op: "list tests", Err: err}
	}

	return testRuns, nil
}

func (c *TestController) ListTestsByUser(ctx context.Context, userName string) ([]*TestRun, error) {
	testRuns, err := c.testRunRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, &apperrors.StoreError{Op: "list tests by user", Err: err}
	}

	return testRuns, nil
}

// DeleteTest succeeds whether or not the id exists.
func (c *TestController) DeleteTest(ctx context.Context, id string) error {
	log := c.log.Function("DeleteTest")

	if err := c.testRunRepo.Delete(ctx, id); err != nil {
		return &apperrors.StoreError{Op: "delete test", Err: err}
	}

	log.Info("deleted test run", "id", id)
	c.notifier.Broadcast("test_deleted", map[string]any{"id": id})

	return nil
}
