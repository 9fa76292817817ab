package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/service"
)

type BriefingHandler struct {
	svc   *service.BriefingService
	users *service.UserService
}

func NewBriefingHandler(svc *service.BriefingService, users *service.UserService) *BriefingHandler {
	return &BriefingHandler{svc: svc, users: users}
}

// Daily handles GET /api/briefing/daily
func (h *BriefingHandler) Daily(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	viewer, err := h.users.Lookup(c.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load viewer profile")
	}

	briefing, err := h.svc.Daily(c.Context(), viewer)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to prepare briefing")
	}

	return c.JSON(briefing)
}
