package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/entities"
)

var testToday = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func dateFrom(days int) string {
	return testToday.AddDate(0, 0, days).Format("2006-01-02")
}

func TestEvaluateExpiryNoDate(t *testing.T) {
	info := EvaluateExpiry("", "Produce", testToday)

	assert.Equal(t, StatusUnknown, info.Status)
	assert.Nil(t, info.Days)
	assert.Empty(t, info.SafeUntil)
}

func TestEvaluateExpiryMalformedDate(t *testing.T) {
	info := EvaluateExpiry("not-a-date", "Produce", testToday)

	assert.Equal(t, StatusUnknown, info.Status)
	assert.Nil(t, info.Days)
}

func TestEvaluateExpiryStatusBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		status string
	}{
		{"expired yesterday", -1, StatusExpired},
		{"expires today", 0, StatusExpiring},
		{"expires in three days", 3, StatusExpiring},
		{"expires in four days", 4, StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := EvaluateExpiry(dateFrom(tt.offset), "Other", testToday)

			require.NotNil(t, info.Days)
			assert.Equal(t, tt.offset, *info.Days)
			assert.Equal(t, tt.status, info.Status)
		})
	}
}

func TestEvaluateExpirySafeConsumeBuffer(t *testing.T) {
	tests := []struct {
		category string
		buffer   int
	}{
		{"Produce", 2},
		{"Meat", 1},
		{"Dairy", 5},
		{"Grains", 90},
		{"Canned", 365},
		{"Spices", 180},
		{"Other", 7},
		{"Beverages", 7}, // unmapped category falls back to the default
	}

	expiry := dateFrom(5)
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			info := EvaluateExpiry(expiry, tt.category, testToday)

			assert.Equal(t, dateFrom(5+tt.buffer), info.SafeUntil)
			require.NotNil(t, info.SafeDaysLeft)
			assert.Equal(t, 5+tt.buffer, *info.SafeDaysLeft)
		})
	}
}

func TestComputeStats(t *testing.T) {
	items := []entities.PantryItem{
		{ID: "1", Name: "Milk", Category: "Dairy", ExpiryDate: dateFrom(-2)},
		{ID: "2", Name: "Bread", Category: "Grains", ExpiryDate: dateFrom(1)},
		{ID: "3", Name: "Rice", Category: "Grains", ExpiryDate: dateFrom(200)},
		{ID: "4", Name: "Salt", Category: "Spices"},
	}

	stats := ComputeStats(items, testToday)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 3, stats.ActiveItems)
	assert.Equal(t, 1, stats.ItemsExpiringSoon)
	assert.InDelta(t, 3*PerItemValue, stats.EstimatedValue, 0.001)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, testToday)

	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0.0, stats.EstimatedValue)
}
