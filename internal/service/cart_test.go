package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
)

func TestCartService_AddItem(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	cart, err := env.carts.AddItem(ctx, "user-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount)
	assert.True(t, env.carts.Contains(ctx, "user-1", 1))
	assert.Equal(t, 2, env.carts.QuantityOf(ctx, "user-1", 1))
}

func TestCartService_AddItem_UnknownBook(t *testing.T) {
	env := setupServices(t)

	_, err := env.carts.AddItem(context.Background(), "user-1", 999, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.carts.AddItem(ctx, "user-1", 1, 1)
	require.NoError(t, err)

	assert.False(t, env.carts.Contains(ctx, "user-2", 1))
	assert.True(t, env.carts.Get(ctx, "user-2").IsEmpty())
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.carts.AddItem(ctx, "user-1", 1, 3)
	require.NoError(t, err)

	cart := env.carts.SetQuantity(ctx, "user-1", 1, 5)
	assert.Equal(t, 5, cart.ItemCount)

	cart = env.carts.SetQuantity(ctx, "user-1", 1, 0)
	assert.True(t, cart.IsEmpty())

	_, err = env.carts.AddItem(ctx, "user-1", 2, 1)
	require.NoError(t, err)
	cart = env.carts.RemoveItem(ctx, "user-1", 2)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	env := setupServices(t)

	_, err := env.carts.Checkout(context.Background(), "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCartService_Checkout(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")
	userID := resp.User.ID

	_, err := env.carts.AddItem(ctx, userID, 1, 2)
	require.NoError(t, err)
	_, err = env.carts.AddItem(ctx, userID, 2, 1)
	require.NoError(t, err)

	summary := env.carts.Summary(ctx, userID)

	order, err := env.carts.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ReceiptID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, 3, order.ItemCount)
	assert.Len(t, order.Lines, 2)
	assert.True(t, order.Subtotal.Equal(summary.Subtotal))
	assert.True(t, order.Tax.Equal(summary.Tax))
	assert.True(t, order.GrandTotal.Equal(summary.GrandTotal))

	// Checkout empties the cart
	assert.True(t, env.carts.Get(ctx, userID).IsEmpty())

	// The order lands in the user's history
	orders, err := env.carts.Orders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// And updates the back-office aggregates
	account, err := env.store.Accounts.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, account.TotalOrders)
	assert.True(t, account.TotalSpent.Equal(order.GrandTotal))
}

func TestCartService_Checkout_AccumulatesAccountTotals(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")
	userID := resp.User.ID

	total := decimal.Zero
	for i := 0; i < 2; i++ {
		_, err := env.carts.AddItem(ctx, userID, 1, 1)
		require.NoError(t, err)
		order, err := env.carts.Checkout(ctx, userID)
		require.NoError(t, err)
		total = total.Add(order.GrandTotal)
	}

	account, err := env.store.Accounts.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, account.TotalOrders)
	assert.True(t, account.TotalSpent.Equal(total))
}

func TestCartService_Drop(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.carts.AddItem(ctx, "user-1", 1, 2)
	require.NoError(t, err)

	env.carts.Drop("user-1")

	assert.True(t, env.carts.Get(ctx, "user-1").IsEmpty())
}
