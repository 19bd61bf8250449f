package entities

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type UserGoal string

const (
	GoalLose     UserGoal = "lose"
	GoalMaintain UserGoal = "maintain"
	GoalGain     UserGoal = "gain"
)

// UserProfile is the onboarding record. Weight is stored in pounds and height
// in inches as entered; target calculation converts to metric internally.
type UserProfile struct {
	Weight         float64       `json:"weight"`
	Height         float64       `json:"height"`
	Age            int           `json:"age"`
	Gender         string        `json:"gender"` // "male" or "female"
	ActivityLevel  ActivityLevel `json:"activity_level"`
	Goal           UserGoal      `json:"goal"`
	Targets        Macros        `json:"targets"`
	ConsumedMacros Macros        `json:"consumed_macros"`
	DietaryType    string        `json:"dietary_type"`
	Allergies      string        `json:"allergies"`
	WeeklyBudget   float64       `json:"weekly_budget"`
}
