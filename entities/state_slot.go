package entities

import (
	"github.com/google/uuid"
)

// StateSlot is one durable collection for one user. The payload is the full
// JSON-serialized collection and is rewritten whole on every mutation.
type StateSlot struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_user_slot" json:"user_id"`
	Slot    string    `gorm:"uniqueIndex:idx_user_slot" json:"slot"`
	Payload []byte    `gorm:"type:jsonb" json:"payload"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// Slot names, one per collection.
const (
	SlotPantryItems  = "pantry_items"
	SlotMealPlan     = "meal_plan"
	SlotSavedRecipes = "saved_recipes"
	SlotGroceryList  = "grocery_list"
	SlotUserProfile  = "user_profile"
)
