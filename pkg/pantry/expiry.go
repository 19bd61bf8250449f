package pantry

import (
	"math"
	"time"

	"FreshPlan-Backend/entities"
)

const (
	StatusUnknown  = "unknown"
	StatusGood     = "good"
	StatusExpiring = "expiring"
	StatusExpired  = "expired"
)

// PerItemValue is a rough per-item price used for the pantry value estimate,
// not a real valuation.
const PerItemValue = 4.50

type ExpiryInfo struct {
	Days         *int
	Status       string
	SafeUntil    string
	SafeDaysLeft *int
}

// EvaluateExpiry derives the expiry view of one item for a given day. Items
// without a parseable expiry date are reported as unknown.
func EvaluateExpiry(expiryDate string, category string, today time.Time) ExpiryInfo {
	if expiryDate == "" {
		return ExpiryInfo{Status: StatusUnknown}
	}

	expiry, err := time.Parse("2006-01-02", expiryDate)
	if err != nil {
		return ExpiryInfo{Status: StatusUnknown}
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	expiry = time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, today.Location())

	// rounding absorbs DST offsets between the two midnights
	days := int(math.Round(expiry.Sub(midnight).Hours() / 24))

	bufferDays, ok := SafeConsumeBuffer[category]
	if !ok {
		bufferDays = DefaultSafeConsumeBufferDays
	}
	safeDate := expiry.AddDate(0, 0, bufferDays)
	safeDaysLeft := int(math.Round(safeDate.Sub(midnight).Hours() / 24))

	status := StatusGood
	if days < 0 {
		status = StatusExpired
	} else if days <= 3 {
		status = StatusExpiring
	}

	return ExpiryInfo{
		Days:         &days,
		Status:       status,
		SafeUntil:    safeDate.Format("2006-01-02"),
		SafeDaysLeft: &safeDaysLeft,
	}
}

type Stats struct {
	TotalItems        int
	ActiveItems       int
	ExpiredItems      int
	ItemsExpiringSoon int
	EstimatedValue    float64
}

// ComputeStats aggregates pantry health for the dashboard. Active means not
// expired, the estimated value is active count times a flat per-item price.
func ComputeStats(items []entities.PantryItem, today time.Time) Stats {
	stats := Stats{TotalItems: len(items)}

	for _, item := range items {
		info := EvaluateExpiry(item.ExpiryDate, item.Category, today)
		switch info.Status {
		case StatusExpired:
			stats.ExpiredItems++
		case StatusExpiring:
			stats.ItemsExpiringSoon++
		}
	}

	stats.ActiveItems = stats.TotalItems - stats.ExpiredItems
	stats.EstimatedValue = float64(stats.ActiveItems) * PerItemValue
	return stats
}
