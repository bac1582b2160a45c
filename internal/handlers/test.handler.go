package handlers

import (
	"server/internal/app"
	testController "server/internal/controllers/tests"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TestHandler struct {
	Handler
	controller testController.TestController
}

func NewTestHandler(app app.App, router fiber.Router) *TestHandler {
	log := logger.New("handlers").File("test_handler")
	return &TestHandler{
		controller: *app.TestController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *TestHandler) Register() {
	h.router.Post("/addtest", h.createTest)
	h.router.Get("/tests", h.listTests)
	h.router.Get("/tests/:userName", h.listTestsByUser)
	h.router.Delete("/tests/:id", h.deleteTest)
}

func (h *TestHandler) createTest(c *fiber.Ctx) error {
	log := h.log.Function("createTest")

	var request CreateTestRunRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse add test request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "failure", "error": "failed to parse request body"})
	}

	if _, err := h.controller.CreateTest(c.Context(), &request); err != nil {
		log.Er("failed to create test", err)
		return failureJSON(c, err)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Test added successfully"})
}

func (h *TestHandler) listTests(c *fiber.Ctx) error {
	log := h.log.Function("listTests")

	testRuns, err := h.controller.ListTests(c.Context())
	if err != nil {
		log.Er("failed to list tests", err)
		return failureJSON(c, err)
	}

	if testRuns == nil {
		testRuns = []*TestRun{}
	}

	return c.JSON(fiber.Map{"status": "success", "tests": testRuns})
}

func (h *TestHandler) listTestsByUser(c *fiber.Ctx) error {
	log := h.log.Function("listTestsByUser")

	testRuns, err := h.controller.ListTestsByUser(c.Context(), c.Params("userName"))
	if err != nil {
		log.Er("failed to list tests by user", err)
		return failureJSON(c, err)
	}

	if testRuns == nil {
		testRuns = []*TestRun{}
	}

	return c.JSON(fiber.Map{"status": "success", "tests": testRuns})
}

func (h *TestHandler) deleteTest(c *fiber.Ctx) error {
	log := h.log.Function("deleteTest")

	if err := h.controller.DeleteTest(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete test", err)
		return failureJSON(c, err)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Test deleted successfully"})
}
