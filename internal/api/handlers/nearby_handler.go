package handlers

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/internal/api/presenters"
	"FreshPlan-Backend/pkg/gemini"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NearbyHandler interface {
		FindNearby(c *fiber.Ctx) error
	}

	nearbyHandler struct {
		gemini    gemini.GeminiClient
		validator *validator.Validate
	}
)

func NewNearbyHandler(geminiClient gemini.GeminiClient, validator *validator.Validate) NearbyHandler {
	return &nearbyHandler{
		gemini:    geminiClient,
		validator: validator,
	}
}

func (h *nearbyHandler) FindNearby(c *fiber.Ctx) error {
	req := new(domain.FindNearbyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindNearby, err)
	}

	places, err := h.gemini.FindNearbyPlaces(c.Context(), req.Latitude, req.Longitude)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedFindNearby, err)
	}

	return presenters.SuccessResponse(c, domain.FindNearbyResponse{Places: places}, fiber.StatusOK, domain.MessageSuccessFindNearby)
}
