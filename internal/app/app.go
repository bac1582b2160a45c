package app

import (
	"server/config"
	"server/internal/database"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/websockets"

	testController "server/internal/controllers/tests"
	userController "server/internal/controllers/users"
)

type App struct {
	Database  database.DB
	Websocket *websockets.Manager
	Config    config.Config

	// Repositories
	TestRunRepo repositories.TestRunRepository
	UserRepo    repositories.UserRepository

	// Controllers
	TestController *testController.TestController
	UserController *userController.UserController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	websocket := websockets.New()

	// Initialize repositories
	testRunRepo := repositories.NewTestRun(db)
	userRepo := repositories.NewUser(db)

	// Initialize controllers with repositories
	testController := testController.New(testRunRepo, websocket)
	userController := userController.New(userRepo, websocket)

	app := &App{
		Database:       db,
		Config:         config,
		Websocket:      websocket,
		TestRunRepo:    testRunRepo,
		UserRepo:       userRepo,
		TestController: testController,
		UserController: userController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.TestRunRepo,
		a.UserRepo,
		a.TestController,
		a.UserController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
