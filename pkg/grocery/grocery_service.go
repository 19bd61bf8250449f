package grocery

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/pantry"
	"FreshPlan-Backend/pkg/planner"
	"FreshPlan-Backend/pkg/recipe"
	"FreshPlan-Backend/pkg/state"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	GroceryService interface {
		GetGroceryList(ctx context.Context, userID string) (domain.GroceryListResponse, error)
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryListResponse, error)
		MergeGroceryItems(ctx context.Context, req domain.MergeGroceryItemsRequest, userID string) (domain.GroceryListResponse, error)
		GenerateFromPlan(ctx context.Context, userID string) (domain.GroceryListResponse, error)
		SuggestRestock(ctx context.Context, userID string) (domain.RestockResponse, error)
		ImportRecipeIngredients(ctx context.Context, req domain.ImportIngredientsRequest, userID string) (domain.GroceryListResponse, error)
		ToggleGroceryItem(ctx context.Context, itemID string, userID string) (domain.GroceryListResponse, error)
		RemoveGroceryItem(ctx context.Context, itemID string, userID string) (domain.GroceryListResponse, error)
		ClearCompleted(ctx context.Context, userID string) (domain.GroceryListResponse, error)
	}

	groceryService struct {
		store          state.Store
		gemini         gemini.GeminiClient
		pantryService  pantry.PantryService
		plannerService planner.PlannerService
		profileLoader  recipe.ProfileLoader
	}
)

func NewGroceryService(store state.Store, geminiClient gemini.GeminiClient, pantryService pantry.PantryService, plannerService planner.PlannerService, profileLoader recipe.ProfileLoader) GroceryService {
	return &groceryService{
		store:          store,
		gemini:         geminiClient,
		pantryService:  pantryService,
		plannerService: plannerService,
		profileLoader:  profileLoader,
	}
}

func (s *groceryService) loadList(ctx context.Context, userID string) ([]entities.GroceryItem, error) {
	var items []entities.GroceryItem
	if _, err := s.store.Load(ctx, userID, entities.SlotGroceryList, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.GroceryItem{}
	}
	return items, nil
}

func (s *groceryService) saveList(ctx context.Context, userID string, items []entities.GroceryItem) (domain.GroceryListResponse, error) {
	if err := s.store.Save(ctx, userID, entities.SlotGroceryList, items); err != nil {
		return domain.GroceryListResponse{}, err
	}
	return domain.GroceryListResponse{Items: items, TotalCost: TotalCost(items)}, nil
}

func (s *groceryService) GetGroceryList(ctx context.Context, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return domain.GroceryListResponse{Items: items, TotalCost: TotalCost(items)}, nil
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	quantity := req.Quantity
	if quantity == "" {
		quantity = "1"
	}
	category := req.Category
	if category == "" {
		category = "Other"
	}

	item := entities.GroceryItem{
		ID:             fmt.Sprintf("grocery-%s", uuid.New().String()[:8]),
		Name:           req.Name,
		Quantity:       quantity,
		Category:       category,
		EstimatedPrice: EstimatePrice(req.Name),
		Checked:        false,
	}
	return s.saveList(ctx, userID, append(items, item))
}

func (s *groceryService) MergeGroceryItems(ctx context.Context, req domain.MergeGroceryItemsRequest, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	incoming := make([]entities.GroceryItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ID == "" {
			item.ID = fmt.Sprintf("grocery-%s", uuid.New().String()[:8])
		}
		if item.EstimatedPrice == 0 {
			item.EstimatedPrice = EstimatePrice(item.Name)
		}
		incoming = append(incoming, item)
	}
	return s.saveList(ctx, userID, MergeItems(items, incoming))
}

func (s *groceryService) GenerateFromPlan(ctx context.Context, userID string) (domain.GroceryListResponse, error) {
	plan, err := s.plannerService.LoadPlan(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	if len(plan) == 0 {
		return domain.GroceryListResponse{}, domain.ErrNoMealPlan
	}

	pantryItems, err := s.pantryService.LoadPantry(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	generated, err := s.gemini.GenerateGroceryList(ctx, plan, pantryItems)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.saveList(ctx, userID, MergeItems(items, generated))
}

func (s *groceryService) SuggestRestock(ctx context.Context, userID string) (domain.RestockResponse, error) {
	profile, err := s.profileLoader.LoadProfile(ctx, userID)
	if err != nil {
		return domain.RestockResponse{}, err
	}

	pantryItems, err := s.pantryService.LoadPantry(ctx, userID)
	if err != nil {
		return domain.RestockResponse{}, err
	}

	suggestions, err := s.gemini.SuggestRestockItems(ctx, profile, pantryItems)
	if err != nil {
		return domain.RestockResponse{}, err
	}

	// suggestions stay transient, picking one goes through MergeGroceryItems
	for i := range suggestions {
		for j := range suggestions[i].Items {
			if suggestions[i].Items[j].ID == "" {
				suggestions[i].Items[j].ID = fmt.Sprintf("restock-%s", uuid.New().String()[:8])
			}
		}
	}
	return domain.RestockResponse{Suggestions: suggestions}, nil
}

func (s *groceryService) ImportRecipeIngredients(ctx context.Context, req domain.ImportIngredientsRequest, userID string) (domain.GroceryListResponse, error) {
	if len(req.Recipe.Ingredients) == 0 {
		return domain.GroceryListResponse{}, domain.ErrRecipeNoIngredients
	}

	incoming := make([]entities.GroceryItem, 0, len(req.Recipe.Ingredients))
	for i, ing := range req.Recipe.Ingredients {
		quantity := ing.Amount
		if quantity == "" {
			quantity = "1"
		}
		incoming = append(incoming, entities.GroceryItem{
			ID:             fmt.Sprintf("recipe-ing-%s-%d", req.Recipe.ID, i),
			Name:           ing.Name,
			Quantity:       quantity,
			Category:       "Recipe Item",
			EstimatedPrice: EstimatePrice(ing.Name),
			Checked:        false,
		})
	}

	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.saveList(ctx, userID, MergeItems(items, incoming))
}

func (s *groceryService) ToggleGroceryItem(ctx context.Context, itemID string, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	next, toggled := ToggleItem(items, itemID)
	if !toggled {
		return domain.GroceryListResponse{}, domain.ErrGroceryItemNotFound
	}
	return s.saveList(ctx, userID, next)
}

func (s *groceryService) RemoveGroceryItem(ctx context.Context, itemID string, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	next, removed := RemoveItem(items, itemID)
	if !removed {
		return domain.GroceryListResponse{}, domain.ErrGroceryItemNotFound
	}
	return s.saveList(ctx, userID, next)
}

func (s *groceryService) ClearCompleted(ctx context.Context, userID string) (domain.GroceryListResponse, error) {
	items, err := s.loadList(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return s.saveList(ctx, userID, ClearCompleted(items))
}
