package pantry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
)

// fakeStore keeps slot payloads in memory so the service tests run without a
// database.
type fakeStore struct {
	slots map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{slots: make(map[string][]byte)}
}

func (f *fakeStore) Load(_ context.Context, userID string, slot string, out any) (bool, error) {
	payload, ok := f.slots[userID+"/"+slot]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeStore) Save(_ context.Context, userID string, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.slots[userID+"/"+slot] = payload
	return nil
}

func (f *fakeStore) Clear(_ context.Context, userID string, slot string) error {
	delete(f.slots, userID+"/"+slot)
	return nil
}

func TestGetPantryItemsSeedsDefaults(t *testing.T) {
	store := newFakeStore()
	service := NewPantryService(store, nil, nil, nil)
	ctx := context.Background()

	items, err := service.GetPantryItems(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, items, len(SeedPantry()))
	assert.Equal(t, "Pasta", items[0].Name)

	// the seed is persisted, not regenerated per request
	_, seeded := store.slots["user-1/"+entities.SlotPantryItems]
	assert.True(t, seeded)
}

func TestAddPantryItemPersists(t *testing.T) {
	store := newFakeStore()
	service := NewPantryService(store, nil, nil, nil)
	ctx := context.Background()

	added, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{
		Name:     "Quinoa",
		Quantity: 1,
		Unit:     "bag",
		Category: "Grains",
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, StatusUnknown, added.ExpiryStatus)

	items, err := service.LoadPantry(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, items, len(SeedPantry())+1)
	assert.Equal(t, "Quinoa", items[len(items)-1].Name)
}

func TestAddPantryItemsAssignsDistinctIDs(t *testing.T) {
	service := NewPantryService(newFakeStore(), nil, nil, nil)

	added, err := service.AddPantryItems(context.Background(), domain.AddPantryItemsRequest{
		Items: []domain.AddPantryItemRequest{
			{Name: "Quinoa", Quantity: 1, Unit: "bag", Category: "Grains"},
			{Name: "Lentils", Quantity: 2, Unit: "bag", Category: "Grains"},
		},
	}, "user-1")

	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.NotEqual(t, added[0].ID, added[1].ID)
}

func TestUpdatePantryItem(t *testing.T) {
	store := newFakeStore()
	service := NewPantryService(store, nil, nil, nil)
	ctx := context.Background()

	items, err := service.LoadPantry(ctx, "user-1")
	require.NoError(t, err)

	newQuantity := 9.0
	err = service.UpdatePantryItem(ctx, items[0].ID, domain.UpdatePantryItemRequest{
		Quantity: &newQuantity,
	}, "user-1")
	require.NoError(t, err)

	items, err = service.LoadPantry(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 9.0, items[0].Quantity)
}

func TestUpdatePantryItemNotFound(t *testing.T) {
	service := NewPantryService(newFakeStore(), nil, nil, nil)

	err := service.UpdatePantryItem(context.Background(), "missing", domain.UpdatePantryItemRequest{}, "user-1")
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestRemovePantryItem(t *testing.T) {
	store := newFakeStore()
	service := NewPantryService(store, nil, nil, nil)
	ctx := context.Background()

	items, err := service.LoadPantry(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, service.RemovePantryItem(ctx, items[0].ID, "user-1"))

	remaining, err := service.LoadPantry(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, remaining, len(items)-1)

	err = service.RemovePantryItem(ctx, "missing", "user-1")
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestGetPantryStatsOnSeed(t *testing.T) {
	service := NewPantryService(newFakeStore(), nil, nil, nil)

	stats, err := service.GetPantryStats(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, len(SeedPantry()), stats.TotalItems)
	assert.Equal(t, stats.TotalItems-stats.ExpiredItems, stats.ActiveItems)
}
