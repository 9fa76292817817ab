package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

type OpportunityHandler struct {
	repo *repository.OpportunityRepo
}

func NewOpportunityHandler(repo *repository.OpportunityRepo) *OpportunityHandler {
	return &OpportunityHandler{repo: repo}
}

// List handles GET /api/opportunities
func (h *OpportunityHandler) List(c fiber.Ctx) error {
	opps, err := h.repo.ListAll(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list opportunities")
	}
	if opps == nil {
		opps = []model.Opportunity{}
	}
	return c.JSON(opps)
}

// Create handles POST /api/opportunities
func (h *OpportunityHandler) Create(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	var req model.OpportunityCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title
	if req.Org == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "org is required")
	}
	if errMsg := middleware.ValidateCoordinates(req.Latitude, req.Longitude); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	opp, err := h.repo.Create(c.Context(), userID, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create opportunity")
	}
	return c.Status(fiber.StatusCreated).JSON(opp)
}
