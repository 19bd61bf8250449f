package planner

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/pantry"
	"FreshPlan-Backend/pkg/recipe"
	"FreshPlan-Backend/pkg/state"
	"context"
)

type (
	PlannerService interface {
		GeneratePlan(ctx context.Context, userID string) (domain.MealPlanResponse, error)
		GetPlan(ctx context.Context, userID string) (domain.MealPlanResponse, error)

		// LoadPlan exposes the raw plan to the grocery service.
		LoadPlan(ctx context.Context, userID string) ([]entities.DayPlan, error)
	}

	plannerService struct {
		store         state.Store
		gemini        gemini.GeminiClient
		pantryService pantry.PantryService
		profileLoader recipe.ProfileLoader
	}
)

func NewPlannerService(store state.Store, geminiClient gemini.GeminiClient, pantryService pantry.PantryService, profileLoader recipe.ProfileLoader) PlannerService {
	return &plannerService{
		store:         store,
		gemini:        geminiClient,
		pantryService: pantryService,
		profileLoader: profileLoader,
	}
}

func (s *plannerService) LoadPlan(ctx context.Context, userID string) ([]entities.DayPlan, error) {
	var plan []entities.DayPlan
	if _, err := s.store.Load(ctx, userID, entities.SlotMealPlan, &plan); err != nil {
		return nil, err
	}
	if plan == nil {
		plan = []entities.DayPlan{}
	}
	return plan, nil
}

func (s *plannerService) GeneratePlan(ctx context.Context, userID string) (domain.MealPlanResponse, error) {
	items, err := s.pantryService.LoadPantry(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	if len(items) == 0 {
		return domain.MealPlanResponse{}, domain.ErrEmptyPantry
	}

	profile, err := s.profileLoader.LoadProfile(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	plan, err := s.gemini.GenerateWeeklyPlan(ctx, items, profile)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	if len(plan) == 0 {
		return domain.MealPlanResponse{}, domain.ErrPlanGenerationEmpty
	}

	for i := range plan {
		plan[i].DailyMacros = DailyMacros(plan[i])
	}

	if err := s.store.Save(ctx, userID, entities.SlotMealPlan, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return domain.MealPlanResponse{
		Days:       plan,
		PlanMacros: AveragePlanMacros(plan),
	}, nil
}

func (s *plannerService) GetPlan(ctx context.Context, userID string) (domain.MealPlanResponse, error) {
	plan, err := s.LoadPlan(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return domain.MealPlanResponse{
		Days:       plan,
		PlanMacros: AveragePlanMacros(plan),
	}, nil
}
