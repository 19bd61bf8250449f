package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/entities"
)

type fakeStateRepository struct {
	slots map[string][]byte
}

func newFakeStateRepository() *fakeStateRepository {
	return &fakeStateRepository{slots: make(map[string][]byte)}
}

func (f *fakeStateRepository) key(userID, slot string) string {
	return userID + "/" + slot
}

func (f *fakeStateRepository) GetSlot(_ context.Context, userID string, slot string) ([]byte, error) {
	payload, ok := f.slots[f.key(userID, slot)]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return payload, nil
}

func (f *fakeStateRepository) UpsertSlot(_ context.Context, userID string, slot string, payload []byte) error {
	f.slots[f.key(userID, slot)] = payload
	return nil
}

func (f *fakeStateRepository) DeleteSlot(_ context.Context, userID string, slot string) error {
	delete(f.slots, f.key(userID, slot))
	return nil
}

func TestStoreLoadAbsentSlot(t *testing.T) {
	store := NewStore(newFakeStateRepository())

	var items []entities.PantryItem
	found, err := store.Load(context.Background(), "user-1", entities.SlotPantryItems, &items)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)
}

func TestStoreSaveThenLoad(t *testing.T) {
	store := NewStore(newFakeStateRepository())
	ctx := context.Background()

	saved := []entities.PantryItem{{ID: "item-1", Name: "Rice", Quantity: 2}}
	require.NoError(t, store.Save(ctx, "user-1", entities.SlotPantryItems, saved))

	var loaded []entities.PantryItem
	found, err := store.Load(ctx, "user-1", entities.SlotPantryItems, &loaded)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestStoreLoadMalformedPayload(t *testing.T) {
	repository := newFakeStateRepository()
	repository.slots["user-1/"+entities.SlotPantryItems] = []byte("{not json")
	store := NewStore(repository)

	var items []entities.PantryItem
	found, err := store.Load(context.Background(), "user-1", entities.SlotPantryItems, &items)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreSlotsAreIndependent(t *testing.T) {
	store := NewStore(newFakeStateRepository())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", entities.SlotPantryItems, []entities.PantryItem{{ID: "1"}}))
	require.NoError(t, store.Save(ctx, "user-2", entities.SlotPantryItems, []entities.PantryItem{{ID: "2"}}))

	var items []entities.PantryItem
	found, err := store.Load(ctx, "user-1", entities.SlotPantryItems, &items)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(newFakeStateRepository())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", entities.SlotGroceryList, []entities.GroceryItem{{ID: "1"}}))
	require.NoError(t, store.Clear(ctx, "user-1", entities.SlotGroceryList))

	var items []entities.GroceryItem
	found, err := store.Load(ctx, "user-1", entities.SlotGroceryList, &items)
	require.NoError(t, err)
	assert.False(t, found)
}
