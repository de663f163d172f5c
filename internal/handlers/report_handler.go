package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozanturhan/artmarket-backend/internal/middleware"
	"github.com/ozanturhan/artmarket-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ArtistSales returns the caller's own sales and stats.
func (h *ReportHandler) ArtistSales(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	report, err := h.reportService.ArtistSales(actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(report)
}

// GlobalSales is the admin sales report.
func (h *ReportHandler) GlobalSales(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	report, err := h.reportService.GlobalSales(actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(report)
}
