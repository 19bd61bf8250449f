package profile

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/internal/utils/storage"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/state"
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		SaveProfile(ctx context.Context, req domain.SaveProfileRequest, userID string) (domain.ProfileResponse, error)
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.LogMealResponse, error)
		GetMacroProgress(ctx context.Context, userID string) (domain.MacroProgressResponse, error)

		// LoadProfile exposes the raw record to the planner, recipe and
		// grocery services. Returns nil when onboarding has not happened.
		LoadProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	}

	profileService struct {
		store  state.Store
		gemini gemini.GeminiClient
		s3     storage.AwsS3
	}
)

func NewProfileService(store state.Store, geminiClient gemini.GeminiClient, s3 storage.AwsS3) ProfileService {
	return &profileService{
		store:  store,
		gemini: geminiClient,
		s3:     s3,
	}
}

func (s *profileService) LoadProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	found, err := s.store.Load(ctx, userID, entities.SlotUserProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (s *profileService) saveProfile(ctx context.Context, userID string, profile *entities.UserProfile) error {
	return s.store.Save(ctx, userID, entities.SlotUserProfile, profile)
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.LoadProfile(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return domain.ProfileResponse{
		Profile:            profile,
		OnboardingRequired: profile == nil,
	}, nil
}

func (s *profileService) SaveProfile(ctx context.Context, req domain.SaveProfileRequest, userID string) (domain.ProfileResponse, error) {
	existing, err := s.LoadProfile(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	profile := entities.UserProfile{
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: entities.ActivityLevel(req.ActivityLevel),
		Goal:          entities.UserGoal(req.Goal),
		DietaryType:   req.DietaryType,
		Allergies:     req.Allergies,
		WeeklyBudget:  req.WeeklyBudget,
	}
	profile.Targets = CalculateTargets(req.Weight, req.Height, req.Age, req.Gender, profile.ActivityLevel, profile.Goal)

	// re-saving keeps the running consumed total
	if existing != nil {
		profile.ConsumedMacros = existing.ConsumedMacros
	}

	if err := s.saveProfile(ctx, userID, &profile); err != nil {
		return domain.ProfileResponse{}, err
	}
	return domain.ProfileResponse{Profile: &profile, OnboardingRequired: false}, nil
}

func (s *profileService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.LogMealResponse, error) {
	profile, err := s.LoadProfile(ctx, userID)
	if err != nil {
		return domain.LogMealResponse{}, err
	}
	if profile == nil {
		return domain.LogMealResponse{}, domain.ErrProfileNotFound
	}

	file, err := req.Image.Open()
	if err != nil {
		return domain.LogMealResponse{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.LogMealResponse{}, err
	}

	fileName := fmt.Sprintf("meal-%s", uuid.New().String())
	if _, err := s.s3.UploadFile(fileName, req.Image, "meal-photos", storage.AllowImage...); err != nil {
		return domain.LogMealResponse{}, err
	}

	mimeType := req.Image.Header.Get("Content-Type")
	base64Image := base64.StdEncoding.EncodeToString(fileData)

	macros, err := s.gemini.AnalyzeMeal(ctx, base64Image, mimeType)
	if err != nil {
		return domain.LogMealResponse{}, err
	}
	if macros == nil {
		return domain.LogMealResponse{}, domain.ErrMealAnalysisEmpty
	}

	profile.ConsumedMacros = profile.ConsumedMacros.Add(*macros)
	if err := s.saveProfile(ctx, userID, profile); err != nil {
		return domain.LogMealResponse{}, err
	}

	return domain.LogMealResponse{
		Logged:   *macros,
		Consumed: profile.ConsumedMacros,
	}, nil
}

func (s *profileService) GetMacroProgress(ctx context.Context, userID string) (domain.MacroProgressResponse, error) {
	profile, err := s.LoadProfile(ctx, userID)
	if err != nil {
		return domain.MacroProgressResponse{}, err
	}
	if profile == nil {
		return domain.MacroProgressResponse{}, domain.ErrProfileNotFound
	}

	entry := func(consumed, target float64) domain.MacroProgressEntry {
		return domain.MacroProgressEntry{
			Consumed: consumed,
			Target:   target,
			Percent:  ProgressPercent(consumed, target),
		}
	}

	consumed := profile.ConsumedMacros
	targets := profile.Targets
	return domain.MacroProgressResponse{
		Calories: entry(consumed.Calories, targets.Calories),
		Protein:  entry(consumed.Protein, targets.Protein),
		Carbs:    entry(consumed.Carbs, targets.Carbs),
		Fats:     entry(consumed.Fats, targets.Fats),
		Sugar:    entry(consumed.Sugar, targets.Sugar),
	}, nil
}
