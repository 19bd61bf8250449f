package handlers

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/internal/api/presenters"
	"FreshPlan-Backend/pkg/grocery"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GetGroceryList(c *fiber.Ctx) error
		AddGroceryItem(c *fiber.Ctx) error
		MergeGroceryItems(c *fiber.Ctx) error
		GenerateFromPlan(c *fiber.Ctx) error
		SuggestRestock(c *fiber.Ctx) error
		ImportRecipeIngredients(c *fiber.Ctx) error
		ToggleGroceryItem(c *fiber.Ctx) error
		RemoveGroceryItem(c *fiber.Ctx) error
		ClearCompleted(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GetGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetGroceryList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryList)
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) MergeGroceryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MergeGroceryItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMergeGroceryItems, err)
	}

	res, err := h.groceryService.MergeGroceryItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMergeGroceryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMergeGroceryItems)
}

func (h *groceryHandler) GenerateFromPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GenerateFromPlan(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoMealPlan) {
			return presenters.ErrorResponse(c, fiber.StatusPreconditionFailed, domain.MessageFailedGenerateGroceryList, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateGroceryList)
}

func (h *groceryHandler) SuggestRestock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.SuggestRestock(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRestockSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRestockSuggestions)
}

func (h *groceryHandler) ImportRecipeIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ImportIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportIngredients, err)
	}

	res, err := h.groceryService.ImportRecipeIngredients(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedImportIngredients, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportIngredients)
}

func (h *groceryHandler) ToggleGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.groceryService.ToggleGroceryItem(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleGroceryItem)
}

func (h *groceryHandler) RemoveGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.groceryService.RemoveGroceryItem(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveGroceryItem)
}

func (h *groceryHandler) ClearCompleted(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.ClearCompleted(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearCompleted, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearCompleted)
}
