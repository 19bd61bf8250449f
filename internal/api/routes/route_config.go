package routes

import (
	"FreshPlan-Backend/internal/api/handlers"
	"FreshPlan-Backend/internal/middleware"
	"FreshPlan-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	PantryHandler  handlers.PantryHandler
	ProfileHandler handlers.ProfileHandler
	RecipeHandler  handlers.RecipeHandler
	PlannerHandler handlers.PlannerHandler
	GroceryHandler handlers.GroceryHandler
	NearbyHandler  handlers.NearbyHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Pantry()
	c.Profile()
	c.Recipes()
	c.Planner()
	c.Grocery()
	c.Nearby()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	pantry.Get("/stats", c.PantryHandler.GetPantryStats)

	// Basic CRUD operations
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Post("/batch", c.PantryHandler.AddPantryItems)
	pantry.Patch("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.RemovePantryItem)

	// Special operations
	pantry.Post("/scan", c.PantryHandler.ScanPantry)
	pantry.Post("/expiry-digest", c.PantryHandler.SendExpiryDigest)
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Put("", c.ProfileHandler.SaveProfile)
	profile.Post("/log-meal", c.ProfileHandler.LogMeal)
	profile.Get("/progress", c.ProfileHandler.GetMacroProgress)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/suggest", c.RecipeHandler.SuggestRecipes)
	recipes.Post("/inspire", c.RecipeHandler.SuggestInspirationRecipes)
	recipes.Post("/details", c.RecipeHandler.GetRecipeDetails)
	recipes.Post("/toggle-save", c.RecipeHandler.ToggleSaveRecipe)
	recipes.Get("/saved", c.RecipeHandler.GetSavedRecipes)
}

func (c *Config) Planner() {
	plan := c.App.Group("/api/v1/plan", c.Middleware.AuthMiddleware(c.JWTService))
	plan.Get("", c.PlannerHandler.GetPlan)
	plan.Post("/generate", c.PlannerHandler.GeneratePlan)
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.AuthMiddleware(c.JWTService))
	grocery.Get("", c.GroceryHandler.GetGroceryList)
	grocery.Post("", c.GroceryHandler.AddGroceryItem)
	grocery.Post("/merge", c.GroceryHandler.MergeGroceryItems)
	grocery.Post("/generate", c.GroceryHandler.GenerateFromPlan)
	grocery.Post("/restock", c.GroceryHandler.SuggestRestock)
	grocery.Post("/import-ingredients", c.GroceryHandler.ImportRecipeIngredients)
	grocery.Patch("/:id/toggle", c.GroceryHandler.ToggleGroceryItem)
	grocery.Delete("/completed", c.GroceryHandler.ClearCompleted)
	grocery.Delete("/:id", c.GroceryHandler.RemoveGroceryItem)
}

func (c *Config) Nearby() {
	nearby := c.App.Group("/api/v1/nearby", c.Middleware.AuthMiddleware(c.JWTService))
	nearby.Post("", c.NearbyHandler.FindNearby)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
