package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/middleware"
	"github.com/ozanturhan/artmarket-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	users, err := h.userService.List(actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	stats, err := h.userService.Stats(actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateRole(actor, targetID, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.userService.Delete(actor, targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
