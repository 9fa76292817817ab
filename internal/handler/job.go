package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

type JobHandler struct {
	repo *repository.JobRepo
}

func NewJobHandler(repo *repository.JobRepo) *JobHandler {
	return &JobHandler{repo: repo}
}

// List handles GET /api/jobs
func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.repo.ListAll(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list jobs")
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return c.JSON(jobs)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	var req model.JobCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title
	if req.Company == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "company is required")
	}
	if errMsg := middleware.ValidateCoordinates(req.Latitude, req.Longitude); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	job, err := h.repo.Create(c.Context(), userID, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create job")
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}
