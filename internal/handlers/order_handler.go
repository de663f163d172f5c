package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/middleware"
	"github.com/ozanturhan/artmarket-backend/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create purchases an artwork for the authenticated actor.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	artworkID, err := uuid.Parse(req.ArtworkID)
	if err != nil {
		return badRequest(c, "Please provide a valid artwork id")
	}

	order, err := h.orderService.Create(actor, artworkID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	orders, err := h.orderService.List(actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(orders)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	order, err := h.orderService.GetByID(actor, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(order)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	order, err := h.orderService.SetStatus(actor, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(order)
}
