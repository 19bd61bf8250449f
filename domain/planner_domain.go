package domain

import (
	"errors"

	"FreshPlan-Backend/entities"
)

var (
	MessageSuccessGeneratePlan = "meal plan generated successfully"
	MessageSuccessGetPlan      = "meal plan retrieved successfully"

	MessageFailedGeneratePlan = "failed to generate meal plan"
	MessageFailedGetPlan      = "failed to retrieve meal plan"

	ErrPlanGenerationEmpty = errors.New("plan generation returned no days")
)

type (
	MealPlanResponse struct {
		Days       []entities.DayPlan `json:"days"`
		PlanMacros *entities.Macros   `json:"plan_macros,omitempty"` // per-day average
	}
)
