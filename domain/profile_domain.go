package domain

import (
	"errors"
	"mime/multipart"

	"FreshPlan-Backend/entities"
)

var (
	MessageSuccessSaveProfile = "profile saved successfully"
	MessageSuccessGetProfile  = "profile retrieved successfully"
	MessageSuccessLogMeal     = "meal logged successfully"
	MessageSuccessGetProgress = "macro progress retrieved successfully"

	MessageFailedSaveProfile = "failed to save profile"
	MessageFailedGetProfile  = "failed to retrieve profile"
	MessageFailedLogMeal     = "failed to log meal"
	MessageFailedGetProgress = "failed to retrieve macro progress"

	ErrProfileNotFound   = errors.New("profile not set up yet")
	ErrMealAnalysisEmpty = errors.New("could not estimate macros from image")
)

// Suggested dietary types shown at onboarding. The field itself is free-form.
var DietTypes = []string{
	"Standard / None",
	"Vegetarian",
	"Vegan",
	"Pescatarian",
	"Keto",
	"Paleo",
	"Gluten-Free",
	"Dairy-Free",
	"Low-Carb",
}

type (
	SaveProfileRequest struct {
		Weight        float64 `json:"weight" validate:"required,gt=0"` // pounds
		Height        float64 `json:"height" validate:"required,gt=0"` // inches
		Age           int     `json:"age" validate:"required,gt=0"`
		Gender        string  `json:"gender" validate:"required,oneof=male female"`
		ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
		Goal          string  `json:"goal" validate:"required,oneof=lose maintain gain"`
		DietaryType   string  `json:"dietary_type"`
		Allergies     string  `json:"allergies"`
		WeeklyBudget  float64 `json:"weekly_budget" validate:"gte=0"`
	}

	ProfileResponse struct {
		Profile            *entities.UserProfile `json:"profile"`
		OnboardingRequired bool                  `json:"onboarding_required"`
	}

	LogMealRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	LogMealResponse struct {
		Logged   entities.Macros `json:"logged"`
		Consumed entities.Macros `json:"consumed"`
	}

	MacroProgressEntry struct {
		Consumed float64 `json:"consumed"`
		Target   float64 `json:"target"`
		Percent  float64 `json:"percent"` // capped at 100
	}

	MacroProgressResponse struct {
		Calories MacroProgressEntry `json:"calories"`
		Protein  MacroProgressEntry `json:"protein"`
		Carbs    MacroProgressEntry `json:"carbs"`
		Fats     MacroProgressEntry `json:"fats"`
		Sugar    MacroProgressEntry `json:"sugar"`
	}
)
