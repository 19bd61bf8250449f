package domain

import (
	"errors"
	"mime/multipart"

	"FreshPlan-Backend/entities"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessAddPantryItems   = "pantry items added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessRemovePantryItem = "pantry item removed successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessScanPantry       = "pantry scan processed successfully"
	MessageSuccessGetPantryStats   = "pantry statistics retrieved successfully"
	MessageSuccessSendExpiryDigest = "expiry digest sent successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedAddPantryItems   = "failed to add pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedRemovePantryItem = "failed to remove pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedScanPantry       = "failed to process pantry scan"
	MessageFailedGetPantryStats   = "failed to retrieve pantry statistics"
	MessageFailedSendExpiryDigest = "failed to send expiry digest"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrEmptyPantry        = errors.New("no pantry items available")
	ErrNothingExpiring    = errors.New("no items close to expiry")
	ErrScanNoItems        = errors.New("no items recognized in image")
)

type (
	AddPantryItemRequest struct {
		Name       string           `json:"name" validate:"required"`
		Quantity   float64          `json:"quantity" validate:"required,gt=0"`
		Unit       string           `json:"unit" validate:"required"`
		Category   string           `json:"category" validate:"required"`
		ExpiryDate string           `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		Macros     *entities.Macros `json:"macros,omitempty"`
	}

	AddPantryItemsRequest struct {
		Items []AddPantryItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdatePantryItemRequest struct {
		Name       *string          `json:"name,omitempty"`
		Quantity   *float64         `json:"quantity,omitempty" validate:"omitempty,gt=0"`
		Unit       *string          `json:"unit,omitempty"`
		Category   *string          `json:"category,omitempty"`
		ExpiryDate *string          `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
		Macros     *entities.Macros `json:"macros,omitempty"`
	}

	ScanPantryRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// PantryItemResponse is a pantry item joined with its expiry evaluation.
	PantryItemResponse struct {
		entities.PantryItem
		DaysUntilExpiry *int   `json:"days_until_expiry"`
		ExpiryStatus    string `json:"expiry_status"`
		SafeUntil       string `json:"safe_until,omitempty"`
		SafeDaysLeft    *int   `json:"safe_days_left,omitempty"`
	}

	ScanPantryResponse struct {
		ImageURL   string                `json:"image_url,omitempty"`
		Identified []entities.PantryItem `json:"identified"`
		AddedCount int                   `json:"added_count"`
	}

	PantryStatsResponse struct {
		TotalItems        int     `json:"total_items"`
		ActiveItems       int     `json:"active_items"`
		ExpiredItems      int     `json:"expired_items"`
		ItemsExpiringSoon int     `json:"items_expiring_soon"`
		EstimatedValue    float64 `json:"estimated_value"`
	}
)
