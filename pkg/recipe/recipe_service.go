package recipe

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/pantry"
	"FreshPlan-Backend/pkg/state"
	"context"
)

type (
	RecipeService interface {
		SuggestRecipes(ctx context.Context, userID string) (domain.SuggestRecipesResponse, error)
		SuggestInspirationRecipes(ctx context.Context, userID string) (domain.SuggestRecipesResponse, error)
		GetRecipeDetails(ctx context.Context, req domain.RecipeDetailsRequest, userID string) (*entities.Recipe, error)
		ToggleSaveRecipe(ctx context.Context, req domain.ToggleSaveRecipeRequest, userID string) (domain.ToggleSaveRecipeResponse, error)
		GetSavedRecipes(ctx context.Context, userID string) ([]entities.Recipe, error)
	}

	recipeService struct {
		store         state.Store
		gemini        gemini.GeminiClient
		pantryService pantry.PantryService
		profileLoader ProfileLoader
	}

	// ProfileLoader narrows the profile service down to the read the
	// inspiration prompt needs.
	ProfileLoader interface {
		LoadProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	}
)

func NewRecipeService(store state.Store, geminiClient gemini.GeminiClient, pantryService pantry.PantryService, profileLoader ProfileLoader) RecipeService {
	return &recipeService{
		store:         store,
		gemini:        geminiClient,
		pantryService: pantryService,
		profileLoader: profileLoader,
	}
}

func (s *recipeService) loadSaved(ctx context.Context, userID string) ([]entities.Recipe, error) {
	var saved []entities.Recipe
	if _, err := s.store.Load(ctx, userID, entities.SlotSavedRecipes, &saved); err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []entities.Recipe{}
	}
	return saved, nil
}

func (s *recipeService) SuggestRecipes(ctx context.Context, userID string) (domain.SuggestRecipesResponse, error) {
	items, err := s.pantryService.LoadPantry(ctx, userID)
	if err != nil {
		return domain.SuggestRecipesResponse{}, err
	}
	if len(items) == 0 {
		return domain.SuggestRecipesResponse{}, domain.ErrEmptyPantry
	}

	recipes, err := s.gemini.SuggestRecipes(ctx, items)
	if err != nil {
		return domain.SuggestRecipesResponse{}, err
	}
	return domain.SuggestRecipesResponse{Recipes: recipes}, nil
}

func (s *recipeService) SuggestInspirationRecipes(ctx context.Context, userID string) (domain.SuggestRecipesResponse, error) {
	profile, err := s.profileLoader.LoadProfile(ctx, userID)
	if err != nil {
		return domain.SuggestRecipesResponse{}, err
	}

	recipes, err := s.gemini.SuggestInspirationRecipes(ctx, profile)
	if err != nil {
		return domain.SuggestRecipesResponse{}, err
	}
	return domain.SuggestRecipesResponse{Recipes: recipes}, nil
}

func (s *recipeService) GetRecipeDetails(ctx context.Context, req domain.RecipeDetailsRequest, userID string) (*entities.Recipe, error) {
	items, err := s.pantryService.LoadPantry(ctx, userID)
	if err != nil {
		return nil, err
	}

	pantryNames := make([]string, 0, len(items))
	for _, item := range items {
		pantryNames = append(pantryNames, item.Name)
	}

	details, err := s.gemini.GetRecipeDetails(ctx, req.Title, req.Description, pantryNames)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrGeminiAPIFailed
	}

	details.Title = req.Title
	details.Description = req.Description
	details.MissingIngredientsCount = len(details.MissingIngredients)
	return details, nil
}

func (s *recipeService) ToggleSaveRecipe(ctx context.Context, req domain.ToggleSaveRecipeRequest, userID string) (domain.ToggleSaveRecipeResponse, error) {
	saved, err := s.loadSaved(ctx, userID)
	if err != nil {
		return domain.ToggleSaveRecipeResponse{}, err
	}

	next, added := ToggleSaved(saved, req.Recipe)
	if err := s.store.Save(ctx, userID, entities.SlotSavedRecipes, next); err != nil {
		return domain.ToggleSaveRecipeResponse{}, err
	}

	return domain.ToggleSaveRecipeResponse{Saved: added, Recipes: next}, nil
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string) ([]entities.Recipe, error) {
	return s.loadSaved(ctx, userID)
}
