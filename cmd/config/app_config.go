package config

import (
	"FreshPlan-Backend/internal/api/handlers"
	"FreshPlan-Backend/internal/api/routes"
	"FreshPlan-Backend/internal/middleware"
	"FreshPlan-Backend/internal/utils"
	"FreshPlan-Backend/internal/utils/storage"
	"FreshPlan-Backend/pkg/gemini"
	"FreshPlan-Backend/pkg/grocery"
	"FreshPlan-Backend/pkg/jwt"
	"FreshPlan-Backend/pkg/pantry"
	"FreshPlan-Backend/pkg/planner"
	"FreshPlan-Backend/pkg/profile"
	"FreshPlan-Backend/pkg/recipe"
	"FreshPlan-Backend/pkg/state"
	"FreshPlan-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient := gemini.NewGeminiClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	stateRepository := state.NewStateRepository(db)
	store := state.NewStore(stateRepository)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(store, geminiClient, s3, userRepository)
	profileService := profile.NewProfileService(store, geminiClient, s3)
	recipeService := recipe.NewRecipeService(store, geminiClient, pantryService, profileService)
	plannerService := planner.NewPlannerService(store, geminiClient, pantryService, profileService)
	groceryService := grocery.NewGroceryService(store, geminiClient, pantryService, plannerService, profileService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	nearbyHandler := handlers.NewNearbyHandler(geminiClient, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		PantryHandler:  pantryHandler,
		ProfileHandler: profileHandler,
		RecipeHandler:  recipeHandler,
		PlannerHandler: plannerHandler,
		GroceryHandler: groceryHandler,
		NearbyHandler:  nearbyHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
