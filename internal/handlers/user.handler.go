package handlers

import (
	"server/internal/app"
	userController "server/internal/controllers/users"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	controller userController.UserController
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		controller: *app.UserController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *UserHandler) Register() {
	h.router.Post("/adduser", h.addUser)
	h.router.Get("/users", h.listUsers)
	h.router.Delete("/deleteuser/:id", h.deleteUser)
	h.router.Post("/verifyemail", h.verifyEmail)
}

func (h *UserHandler) addUser(c *fiber.Ctx) error {
	log := h.log.Function("addUser")

	var request AddUserRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse add user request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "failure", "error": "failed to parse request body"})
	}

	if _, err := h.controller.AddUser(c.Context(), &request); err != nil {
		log.Er("failed to add user", err)
		return failureJSON(c, err)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "User added successfully"})
}

func (h *UserHandler) listUsers(c *fiber.Ctx) error {
	log := h.log.Function("listUsers")

	users, err := h.controller.ListUsers(c.Context())
	if err != nil {
		log.Er("failed to list users", err)
		return failureJSON(c, err)
	}

	if users == nil {
		users = []*User{}
	}

	return c.JSON(fiber.Map{"status": "success", "users": users})
}

func (h *UserHandler) deleteUser(c *fiber.Ctx) error {
	log := h.log.Function("deleteUser")

	if err := h.controller.DeleteUser(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete user", err)
		return failureJSON(c, err)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "User deleted successfully"})
}

// verifyEmail reports an allowlist miss as a failure envelope with HTTP
// 200, not as an error status.
func (h *UserHandler) verifyEmail(c *fiber.Ctx) error {
	log := h.log.Function("verifyEmail")

	var request VerifyEmailRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse verify email request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "failure", "error": "failed to parse request body"})
	}

	authorized, err := h.controller.VerifyEmail(c.Context(), &request)
	if err != nil {
		log.Er("failed to verify email", err)
		return failureJSON(c, err)
	}

	if !authorized {
		return c.JSON(fiber.Map{"status": "failure", "authorized": false})
	}

	return c.JSON(fiber.Map{"status": "success", "authorized": true})
}
