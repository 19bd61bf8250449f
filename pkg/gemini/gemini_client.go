package gemini

import (
	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
	"FreshPlan-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// GeminiClient is the gateway to the generative model. Every method
	// degrades to an empty result instead of propagating a malformed
	// response, callers only see hard failures (network, auth).
	GeminiClient interface {
		IdentifyPantryItems(ctx context.Context, imageBase64 string, mimeType string) ([]entities.PantryItem, error)
		AnalyzeMeal(ctx context.Context, imageBase64 string, mimeType string) (*entities.Macros, error)
		SuggestRecipes(ctx context.Context, pantryItems []entities.PantryItem) ([]entities.Recipe, error)
		SuggestInspirationRecipes(ctx context.Context, profile *entities.UserProfile) ([]entities.Recipe, error)
		SuggestRestockItems(ctx context.Context, profile *entities.UserProfile, pantryItems []entities.PantryItem) ([]entities.RestockSuggestion, error)
		GenerateWeeklyPlan(ctx context.Context, pantryItems []entities.PantryItem, profile *entities.UserProfile) ([]entities.DayPlan, error)
		GetRecipeDetails(ctx context.Context, title string, description string, pantryNames []string) (*entities.Recipe, error)
		GenerateGroceryList(ctx context.Context, plan []entities.DayPlan, pantryItems []entities.PantryItem) ([]entities.GroceryItem, error)
		FindNearbyPlaces(ctx context.Context, latitude float64, longitude float64) ([]domain.NearbyPlace, error)
	}

	geminiClient struct {
		httpClient *http.Client
	}
)

func NewGeminiClient() GeminiClient {
	return &geminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func geminiEndpoint() (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	return fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey), nil
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					Title string `json:"title"`
					URI   string `json:"uri"`
				} `json:"web"`
				Maps struct {
					Title string `json:"title"`
					URI   string `json:"uri"`
				} `json:"maps"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (g *geminiClient) generate(ctx context.Context, requestBody map[string]interface{}) (geminiResponse, error) {
	var parsed geminiResponse

	geminiURL, err := geminiEndpoint()
	if err != nil {
		return parsed, err
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return parsed, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return parsed, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return parsed, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parsed, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return parsed, err
	}
	return parsed, nil
}

// generateText runs a text-only prompt and returns the first candidate's text.
func (g *geminiClient) generateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": temperature,
			"topP":        0.8,
			"topK":        40,
		},
	}
	return g.firstCandidateText(ctx, requestBody)
}

// generateVision runs a prompt with an inline image attached.
func (g *geminiClient) generateVision(ctx context.Context, prompt string, imageBase64 string, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      imageBase64,
						},
					},
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}
	return g.firstCandidateText(ctx, requestBody)
}

func (g *geminiClient) firstCandidateText(ctx context.Context, requestBody map[string]interface{}) (string, error) {
	parsed, err := g.generate(ctx, requestBody)
	if err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// extractJSONArray pulls the outermost JSON array out of a model response,
// wrapping a lone object into a single-element array when needed.
func extractJSONArray(text string) (string, bool) {
	text = stripMarkdownFences(text)

	startIdx := strings.Index(text, "[")
	endIdx := strings.LastIndex(text, "]")
	if startIdx != -1 && endIdx != -1 && startIdx < endIdx {
		return text[startIdx : endIdx+1], true
	}

	startIdx = strings.Index(text, "{")
	endIdx = strings.LastIndex(text, "}")
	if startIdx != -1 && endIdx != -1 && startIdx < endIdx {
		return "[" + text[startIdx:endIdx+1] + "]", true
	}

	return "", false
}

func extractJSONObject(text string) (string, bool) {
	text = stripMarkdownFences(text)

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return "", false
	}
	return text[startIdx : endIdx+1], true
}

func (g *geminiClient) IdentifyPantryItems(ctx context.Context, imageBase64 string, mimeType string) ([]entities.PantryItem, error) {
	prompt := "Analyze this image. It is either a photo of food items on a shelf/table or a photo of a GROCERY RECEIPT. " +
		"Identify the food items. If it is a receipt, parse the text to find item names. " +
		"Estimate the quantity and unit for each item. " +
		"You MUST estimate the macros (calories, protein, carbs, fats, sugar) PER UNIT for each item based on standard nutritional data. All 5 fields are mandatory. " +
		"Respond ONLY with a valid JSON array of objects with these fields: " +
		"'name' (string), 'quantity' (number), 'unit' (string), 'category' (string), " +
		"'macros' (object with 'calories', 'protein', 'carbs', 'fats', 'sugar', all numbers). " +
		"Do NOT include expiry dates. Do not include any explanations, markdown formatting, or extra text."

	responseText, err := g.generateVision(ctx, prompt, imageBase64, mimeType)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONArray(responseText)
	if !ok {
		return []entities.PantryItem{}, nil
	}

	var items []entities.PantryItem
	if err := json.Unmarshal([]byte(jsonText), &items); err != nil {
		return []entities.PantryItem{}, nil
	}

	now := time.Now().UnixMilli()
	for i := range items {
		items[i].ID = fmt.Sprintf("scanned-%d-%d", now, i)
		items[i].ExpiryDate = "" // expiry stays manual
	}
	return items, nil
}

func (g *geminiClient) AnalyzeMeal(ctx context.Context, imageBase64 string, mimeType string) (*entities.Macros, error) {
	prompt := "Analyze this meal image. Estimate the total calories, protein, carbs, fats, and sugar for the ENTIRE portion shown. " +
		"Respond ONLY with a valid JSON object with exactly these numeric fields: 'calories', 'protein', 'carbs', 'fats', 'sugar'. " +
		"Do not include any explanations, markdown formatting, or extra text."

	responseText, err := g.generateVision(ctx, prompt, imageBase64, mimeType)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONObject(responseText)
	if !ok {
		return nil, nil
	}

	var macros entities.Macros
	if err := json.Unmarshal([]byte(jsonText), &macros); err != nil {
		return nil, nil
	}
	return &macros, nil
}

func (g *geminiClient) SuggestRecipes(ctx context.Context, pantryItems []entities.PantryItem) ([]entities.Recipe, error) {
	ingredients := make([]string, 0, len(pantryItems))
	for _, item := range pantryItems {
		ingredients = append(ingredients, fmt.Sprintf("%g %s %s", item.Quantity, item.Unit, item.Name))
	}
	ingredientsList := strings.Join(ingredients, ", ")
	if len(ingredientsList) > 1000 {
		ingredientsList = ingredientsList[:1000]
	}

	prompt := fmt.Sprintf(
		"Suggest 3 creative recipes I can make mostly with these ingredients: %s. "+
			"Focus on minimizing waste. Provide clear steps. "+
			"Calculate the macros (calories, protein, carbs, fats, sugar) for the ENTIRE recipe. "+
			"Respond ONLY with a valid JSON array of recipe objects with these fields: "+
			"'title' (string), 'description' (string), "+
			"'ingredients' (array of objects with 'name', 'amount', 'is_pantry_item'), "+
			"'steps' (array of strings), 'prep_time_minutes' (number), "+
			"'macros' (object with 'calories', 'protein', 'carbs', 'fats', 'sugar'), "+
			"'missing_ingredients_count' (number). "+
			"Do not include any explanations or text outside of the JSON array.",
		ingredientsList,
	)

	responseText, err := g.generateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	recipes := decodeRecipes(responseText)
	for i := range recipes {
		recipes[i].ID = fmt.Sprintf("recipe-%s", uuid.New().String()[:8])
	}
	return recipes, nil
}

func (g *geminiClient) SuggestInspirationRecipes(ctx context.Context, profile *entities.UserProfile) ([]entities.Recipe, error) {
	goalContext := "Goal: Healthy eating."
	if profile != nil {
		goalContext = fmt.Sprintf("Goal: %s. Diet: %s. Allergies: %s.", profile.Goal, profile.DietaryType, profile.Allergies)
	}

	prompt := fmt.Sprintf(
		"Suggest 4 popular, delicious recipes that align with this user's profile: %s "+
			"Ignore current pantry inventory. I want to shop for these ingredients. "+
			"Focus on high nutrition and flavor. "+
			"Respond ONLY with a valid JSON array of recipe objects with these fields: "+
			"'title' (string), 'description' (string), "+
			"'ingredients' (array of objects with 'name' and 'amount'), "+
			"'prep_time_minutes' (number), "+
			"'macros' (object with 'calories', 'protein', 'carbs', 'fats', 'sugar'). "+
			"Do not include any explanations or text outside of the JSON array.",
		goalContext,
	)

	responseText, err := g.generateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	recipes := decodeRecipes(responseText)
	for i := range recipes {
		recipes[i].ID = fmt.Sprintf("inspire-%s", uuid.New().String()[:8])
	}
	return recipes, nil
}

func decodeRecipes(responseText string) []entities.Recipe {
	jsonText, ok := extractJSONArray(responseText)
	if !ok {
		return []entities.Recipe{}
	}

	var recipes []entities.Recipe
	if err := json.Unmarshal([]byte(jsonText), &recipes); err != nil {
		return []entities.Recipe{}
	}
	return recipes
}

func (g *geminiClient) SuggestRestockItems(ctx context.Context, profile *entities.UserProfile, pantryItems []entities.PantryItem) ([]entities.RestockSuggestion, error) {
	pantryNames := make([]string, 0, len(pantryItems))
	for _, item := range pantryItems {
		pantryNames = append(pantryNames, item.Name)
	}

	profileContext := "General healthy eating."
	if profile != nil {
		profileContext = fmt.Sprintf(
			"Goal: %s. Diet Type: %s. Allergies/Restrictions: %s. Weekly Budget: $%g (Try to fit within this).",
			profile.Goal, profile.DietaryType, profile.Allergies, profile.WeeklyBudget,
		)
	}

	prompt := fmt.Sprintf(
		"Analyze the User Profile: %s And current pantry: %s. "+
			"Identify GAPS in their nutrition. "+
			"Provide substantially filling items to build complete meals. "+
			"Do not just suggest snacks. Ensure there are proteins and main meal bases. "+
			"Group into these 4 categories: "+
			"1. 'Proteins & Mains': STRICTLY SUGGEST popular, substantial proteins like Steak, Chicken Breast, Ground Beef, Salmon, Eggs, Sausage, or Pork Chops. Do not suggest beans/lentils here unless the diet is Vegan/Vegetarian. "+
			"2. 'Fresh Produce': fruits and vegetables missing from the pantry. "+
			"3. 'Pantry Staples': grains, spices, oils, sauces needed for cooking. "+
			"4. 'Snacks & Other': healthy options or specific goal boosters. "+
			"Suggest 5-7 distinct items per category. Estimate the price in USD. "+
			"Respond ONLY with a valid JSON array of objects with these fields: "+
			"'category' (one of the 4 category labels above), "+
			"'items' (array of objects with 'name', 'quantity' (string), 'estimated_price' (number), 'category' (string)). "+
			"Do not include any explanations or text outside of the JSON array.",
		profileContext,
		strings.Join(pantryNames, ", "),
	)

	responseText, err := g.generateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONArray(responseText)
	if !ok {
		return []entities.RestockSuggestion{}, nil
	}

	var suggestions []entities.RestockSuggestion
	if err := json.Unmarshal([]byte(jsonText), &suggestions); err != nil {
		return []entities.RestockSuggestion{}, nil
	}
	return suggestions, nil
}

func (g *geminiClient) GenerateWeeklyPlan(ctx context.Context, pantryItems []entities.PantryItem, profile *entities.UserProfile) ([]entities.DayPlan, error) {
	names := make([]string, 0, len(pantryItems))
	for _, item := range pantryItems {
		names = append(names, item.Name)
	}
	ingredientsList := strings.Join(names, ", ")
	if len(ingredientsList) > 1500 {
		ingredientsList = ingredientsList[:1500]
	}

	dietInstructions := ""
	if profile != nil {
		dietInstructions = fmt.Sprintf(
			"USER TARGETS: daily calories ~%g kcal, diet: %s, allergies: %s. ",
			profile.Targets.Calories, profile.DietaryType, profile.Allergies,
		)
	}

	prompt := fmt.Sprintf(
		"Create a 3-day meal plan using: %s. %s"+
			"MANDATORY REQUIREMENTS: "+
			"1. Respond ONLY with a valid JSON array covering exactly 3 days. "+
			"2. Every day object MUST contain 'day' (string) and 'meals' (object with strictly 3 keys: 'breakfast', 'lunch', 'dinner', all lowercase). "+
			"3. Do NOT output null for any meal. Generate a valid recipe for ALL 3 meals for ALL 3 days. "+
			"4. Each meal is an object with 'title', 'description' (max 15 words), 'prep_time_minutes' (number), 'missing_ingredients_count' (number), "+
			"and 'macros' (object with 'calories', 'protein', 'carbs', 'fats', 'sugar'). "+
			"5. Do not generate full ingredient lists or steps yet. "+
			"Do not include any explanations or text outside of the JSON array.",
		ingredientsList,
		dietInstructions,
	)

	responseText, err := g.generateText(ctx, prompt, 0.1)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONArray(responseText)
	if !ok {
		return []entities.DayPlan{}, nil
	}

	var days []entities.DayPlan
	if err := json.Unmarshal([]byte(jsonText), &days); err != nil {
		return []entities.DayPlan{}, nil
	}
	return days, nil
}

func (g *geminiClient) GetRecipeDetails(ctx context.Context, title string, description string, pantryNames []string) (*entities.Recipe, error) {
	pantryContext := ""
	if len(pantryNames) > 0 {
		pantryContext = fmt.Sprintf("My pantry has: %s. ", strings.Join(pantryNames, ", "))
	}

	prompt := fmt.Sprintf(
		"For the recipe \"%s\" (%s). %s"+
			"Generate: 1. A detailed ingredients list with amounts. 2. Step-by-step cooking instructions. "+
			"3. A list of missing ingredients (names of items required for the recipe that are NOT in my pantry). "+
			"Respond ONLY with a valid JSON object with these fields: "+
			"'ingredients' (array of objects with 'name' and 'amount'), "+
			"'steps' (array of strings), "+
			"'missing_ingredients' (array of strings). "+
			"Do not include any explanations or text outside of the JSON object.",
		title,
		description,
		pantryContext,
	)

	responseText, err := g.generateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONObject(responseText)
	if !ok {
		return nil, nil
	}

	var details entities.Recipe
	if err := json.Unmarshal([]byte(jsonText), &details); err != nil {
		return nil, nil
	}
	return &details, nil
}

func (g *geminiClient) GenerateGroceryList(ctx context.Context, plan []entities.DayPlan, pantryItems []entities.PantryItem) ([]entities.GroceryItem, error) {
	type mealTitles struct {
		Breakfast string `json:"breakfast,omitempty"`
		Lunch     string `json:"lunch,omitempty"`
		Dinner    string `json:"dinner,omitempty"`
	}
	type daySummary struct {
		Day   string     `json:"day"`
		Meals mealTitles `json:"meals"`
	}

	summary := make([]daySummary, 0, len(plan))
	for _, day := range plan {
		titles := mealTitles{}
		if day.Meals.Breakfast != nil {
			titles.Breakfast = day.Meals.Breakfast.Title
		}
		if day.Meals.Lunch != nil {
			titles.Lunch = day.Meals.Lunch.Title
		}
		if day.Meals.Dinner != nil {
			titles.Dinner = day.Meals.Dinner.Title
		}
		summary = append(summary, daySummary{Day: day.Day, Meals: titles})
	}

	pantryNames := make([]string, 0, len(pantryItems))
	for _, item := range pantryItems {
		pantryNames = append(pantryNames, item.Name)
	}

	summaryJSON, _ := json.Marshal(summary)
	pantryJSON, _ := json.Marshal(pantryNames)

	prompt := fmt.Sprintf(
		"Based on this meal plan: %s, and my current pantry: %s, generate a grocery shopping list for missing items. "+
			"Estimate the price in USD for each item. Categorize them. "+
			"Respond ONLY with a valid JSON array of objects with these fields: "+
			"'name' (string), 'quantity' (string), 'estimated_price' (number), 'category' (string). "+
			"Do not include any explanations or text outside of the JSON array.",
		string(summaryJSON),
		string(pantryJSON),
	)

	responseText, err := g.generateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, err
	}

	jsonText, ok := extractJSONArray(responseText)
	if !ok {
		return []entities.GroceryItem{}, nil
	}

	var items []entities.GroceryItem
	if err := json.Unmarshal([]byte(jsonText), &items); err != nil {
		return []entities.GroceryItem{}, nil
	}

	for i := range items {
		items[i].ID = fmt.Sprintf("grocery-%d", i)
		items[i].Checked = false
	}
	return items, nil
}

func (g *geminiClient) FindNearbyPlaces(ctx context.Context, latitude float64, longitude float64) ([]domain.NearbyPlace, error) {
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": "Find 3 highly-rated healthy food options or grocery stores near me. List their names and why they are good options."},
				},
			},
		},
		"tools": []map[string]interface{}{
			{"google_maps": map[string]interface{}{}},
		},
		"toolConfig": map[string]interface{}{
			"retrievalConfig": map[string]interface{}{
				"latLng": map[string]interface{}{
					"latitude":  latitude,
					"longitude": longitude,
				},
			},
		},
	}

	parsed, err := g.generate(ctx, requestBody)
	if err != nil {
		return nil, err
	}

	if len(parsed.Candidates) == 0 {
		return []domain.NearbyPlace{}, nil
	}

	places := make([]domain.NearbyPlace, 0)
	for _, chunk := range parsed.Candidates[0].GroundingMetadata.GroundingChunks {
		place := domain.NearbyPlace{Title: chunk.Maps.Title, URI: chunk.Maps.URI}
		if place.Title == "" {
			place.Title = chunk.Web.Title
			place.URI = chunk.Web.URI
		}
		if place.Title != "" {
			places = append(places, place)
		}
	}
	return places, nil
}
