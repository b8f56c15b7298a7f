package services

import (
	"testing"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusTable(t *testing.T) {
	cases := []struct {
		current string
		next    string
		hasNext bool
	}{
		{entity.StatusPlaced, entity.StatusPreparing, true},
		{entity.StatusPreparing, entity.StatusReady, true},
		{entity.StatusReady, entity.StatusDelivered, true},
		{entity.StatusDelivered, "", false},
		{entity.StatusCancelled, "", false},
	}
	for _, tc := range cases {
		next, ok := NextStatus(tc.current)
		assert.Equal(t, tc.hasNext, ok, tc.current)
		assert.Equal(t, tc.next, next, tc.current)
	}
}

func TestCanCancelOnlyFromPlaced(t *testing.T) {
	assert.True(t, CanCancel(entity.StatusPlaced))
	for _, s := range []string{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered, entity.StatusCancelled} {
		assert.False(t, CanCancel(s), s)
	}
}

func (env *orderTestEnv) placeOrder(t *testing.T) *entity.Order {
	t.Helper()
	order, err := env.svc.Create(env.customer.ID, &CreateOrderReq{
		ProviderID:      env.provider.ID,
		DeliveryAddress: "House 12, Road 3, Dhanmondi",
		Items:           []OrderItemIn{{MealID: env.meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	return order
}

func TestAdvanceMovesOneStep(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	got, err := env.svc.Advance(env.owner.ID, order.ID, entity.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, got.Status)

	var stored entity.Order
	require.NoError(t, env.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusPreparing, stored.Status)
}

func TestAdvanceWalksTheWholeChain(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	for _, want := range []string{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered} {
		got, err := env.svc.Advance(env.owner.ID, order.ID, want)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
}

func TestAdvanceRejectsWrongRequestedStatus(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	// PLACED may only go to PREPARING; skipping ahead is refused
	_, err := env.svc.Advance(env.owner.ID, order.ID, entity.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var stored entity.Order
	require.NoError(t, env.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusPlaced, stored.Status, "a rejected transition leaves the row untouched")
}

func TestAdvanceIsNoActionAtTerminalStates(t *testing.T) {
	env := setupOrderTest(t)

	for _, terminal := range []string{entity.StatusDelivered, entity.StatusCancelled} {
		order := env.placeOrder(t)
		require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", order.ID).Update("status", terminal).Error)

		_, err := env.svc.Advance(env.owner.ID, order.ID, "")
		assert.ErrorIs(t, err, ErrTerminalStatus, terminal)
	}
}

func TestAdvanceForbiddenForOtherProviders(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	stranger := entity.User{Email: "stranger@test.local", Role: entity.RoleProvider}
	require.NoError(t, env.db.Create(&stranger).Error)
	require.NoError(t, env.db.Create(&entity.Provider{StoreName: "Rival", UserID: stranger.ID}).Error)

	_, err := env.svc.Advance(stranger.ID, order.ID, entity.StatusPreparing)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelFromPlaced(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	got, err := env.svc.Cancel(env.customer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)

	// cancelled is terminal
	_, err = env.svc.Advance(env.owner.ID, order.ID, entity.StatusPreparing)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestCancelRejectedOncePreparing(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	_, err := env.svc.Advance(env.owner.ID, order.ID, entity.StatusPreparing)
	require.NoError(t, err)

	_, err = env.svc.Cancel(env.customer.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)

	var stored entity.Order
	require.NoError(t, env.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusPreparing, stored.Status)
}

func TestCancelForbiddenForOtherCustomers(t *testing.T) {
	env := setupOrderTest(t)
	order := env.placeOrder(t)

	_, err := env.svc.Cancel(env.owner.ID, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
