package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/middleware"
	"github.com/ozanturhan/artmarket-backend/internal/services"
)

type ArtworkHandler struct {
	artworkService *services.ArtworkService
}

func NewArtworkHandler(artworkService *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService}
}

// List is the public catalog endpoint with optional filters.
func (h *ArtworkHandler) List(c *fiber.Ctx) error {
	filter := dto.ArtworkFilter{
		Category: c.Query("category"),
		ArtistID: c.Query("artist"),
		Featured: c.Query("featured") == "true",
	}
	if v := c.Query("available"); v != "" {
		available := v == "true"
		filter.Available = &available
	}

	artworks, err := h.artworkService.List(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

func (h *ArtworkHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid artwork id")
	}

	artwork, err := h.artworkService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artwork)
}

func (h *ArtworkHandler) ListByArtist(c *fiber.Ctx) error {
	artistID, err := uuid.Parse(c.Params("artistId"))
	if err != nil {
		return badRequest(c, "Invalid artist id")
	}

	artworks, err := h.artworkService.ListByArtist(artistID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

func (h *ArtworkHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.artworkService.Categories()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(categories)
}

func (h *ArtworkHandler) Create(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req dto.CreateArtworkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	artwork, err := h.artworkService.Create(actor, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(artwork)
}

func (h *ArtworkHandler) Update(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid artwork id")
	}

	var req dto.UpdateArtworkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	artwork, err := h.artworkService.Update(actor, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artwork)
}

func (h *ArtworkHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid artwork id")
	}

	if err := h.artworkService.Delete(actor, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Artwork deleted successfully"})
}
