package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

// Upper bound for the public ads listing; the feed itself caps at 3.
const maxAdListing = 50

type AdHandler struct {
	repo *repository.AdRepo
}

func NewAdHandler(repo *repository.AdRepo) *AdHandler {
	return &AdHandler{repo: repo}
}

// List handles GET /api/ads
func (h *AdHandler) List(c fiber.Ctx) error {
	ads, err := h.repo.ListEnabled(c.Context(), maxAdListing)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list advertisements")
	}
	if ads == nil {
		ads = []model.Advertisement{}
	}
	return c.JSON(ads)
}
