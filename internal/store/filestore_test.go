package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"food-kiosk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)
	return st, dir
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	meals := []model.MenuItem{
		{
			ID:          uuid.New(),
			Name:        "Burger",
			Description: "Beef burger",
			Price:       9.90,
			Image:       "http://img/burger.png",
			CreatedAt:   time.Now().Truncate(time.Millisecond),
		},
		{
			ID:          uuid.New(),
			Name:        "Fries",
			Description: "Crispy fries",
			Price:       3.50,
			Image:       "http://img/fries.png",
			CreatedAt:   time.Now().Truncate(time.Millisecond),
		},
	}

	require.NoError(t, st.Save(ctx, KeyMeals, meals))

	var loaded []model.MenuItem
	require.NoError(t, st.Load(ctx, KeyMeals, &loaded))

	// Round-trip is order-preserving and value-equal
	require.Len(t, loaded, 2)
	assert.Equal(t, meals[0].ID, loaded[0].ID)
	assert.Equal(t, meals[0].Name, loaded[0].Name)
	assert.Equal(t, meals[1].Name, loaded[1].Name)
	assert.Equal(t, meals[1].Price, loaded[1].Price)
}

func TestFileStore_AbsentKeyLeavesDestUntouched(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	lines := []model.CartLine{}
	require.NoError(t, st.Load(ctx, KeyCartItems, &lines))
	assert.Empty(t, lines)
}

func TestFileStore_MalformedFileTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestFileStore(t)

	path := filepath.Join(dir, KeyOrders+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	orders := []model.Order{}
	require.NoError(t, st.Load(ctx, KeyOrders, &orders))
	assert.Empty(t, orders)

	// The corrupt file is recoverable by the next save
	require.NoError(t, st.Save(ctx, KeyOrders, []model.Order{{ID: 1}}))
	require.NoError(t, st.Load(ctx, KeyOrders, &orders))
	assert.Len(t, orders, 1)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	lines := []model.CartLine{{Name: "Burger", Price: 9.90, Quantity: 2}}
	require.NoError(t, first.Save(ctx, KeyCartItems, lines))

	// A new store over the same directory reads the persisted state
	second, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	var loaded []model.CartLine
	require.NoError(t, second.Load(ctx, KeyCartItems, &loaded))
	assert.Equal(t, lines, loaded)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	require.NoError(t, st.Save(ctx, KeyCartItems, []model.CartLine{{Name: "Burger", Quantity: 2}}))
	require.NoError(t, st.Save(ctx, KeyCartItems, []model.CartLine{}))

	var loaded []model.CartLine
	require.NoError(t, st.Load(ctx, KeyCartItems, &loaded))
	assert.Empty(t, loaded)
}

func TestMemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	orders := []model.Order{
		{ID: 1700000000000, TotalAmount: 23.30, Items: []model.CartLine{{Name: "Burger", Price: 9.90, Quantity: 2}}},
	}
	require.NoError(t, st.Save(ctx, KeyOrders, orders))

	var loaded []model.Order
	require.NoError(t, st.Load(ctx, KeyOrders, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, orders[0].ID, loaded[0].ID)
	assert.Equal(t, orders[0].TotalAmount, loaded[0].TotalAmount)
	assert.Equal(t, orders[0].Items, loaded[0].Items)
}
