package handlers

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/internal/api/presenters"
	"FreshPlan-Backend/pkg/planner"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	PlannerHandler interface {
		GeneratePlan(c *fiber.Ctx) error
		GetPlan(c *fiber.Ctx) error
	}

	plannerHandler struct {
		plannerService planner.PlannerService
	}
)

func NewPlannerHandler(plannerService planner.PlannerService) PlannerHandler {
	return &plannerHandler{plannerService: plannerService}
}

func (h *plannerHandler) GeneratePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.plannerService.GeneratePlan(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPantry) {
			return presenters.ErrorResponse(c, fiber.StatusPreconditionFailed, domain.MessageFailedGeneratePlan, err)
		}
		if errors.Is(err, domain.ErrPlanGenerationEmpty) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGeneratePlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGeneratePlan)
}

func (h *plannerHandler) GetPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.plannerService.GetPlan(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}
