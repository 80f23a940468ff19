package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShippingFor(t *testing.T) {
	assert.Equal(t, 29.0, ShippingFor(0))
	assert.Equal(t, 29.0, ShippingFor(200))
	assert.Equal(t, 29.0, ShippingFor(499.99))
	assert.Equal(t, 0.0, ShippingFor(500))
	assert.Equal(t, 0.0, ShippingFor(600))
}

func TestOrderTotalsWithShipping(t *testing.T) {
	// Below the threshold the flat fee applies.
	items := 200.0
	assert.Equal(t, 229.0, items+ShippingFor(items))

	// At or above the threshold shipping is free.
	items = 600.0
	assert.Equal(t, 600.0, items+ShippingFor(items))
}

func TestRefreshDeliveryProgressAdvancesByAge(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		now   time.Time
		stage int
	}{
		{"creation day", created.Add(2 * time.Hour), 1},
		{"just under a day", created.Add(23 * time.Hour), 1},
		{"second day", created.Add(25 * time.Hour), 2},
		{"third day", created.Add(49 * time.Hour), 3},
		{"much later", created.Add(10 * 24 * time.Hour), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{CreatedAt: created, DeliveryStage: 1}
			order.RefreshDeliveryProgress(tc.now)
			assert.Equal(t, tc.stage, order.DeliveryStage)
		})
	}
}

func TestRefreshDeliveryProgressDelivered(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{CreatedAt: created, DeliveryStage: 2, IsDelivered: true}

	changed := order.RefreshDeliveryProgress(created.Add(30 * time.Hour))
	assert.True(t, changed)
	assert.Equal(t, 4, order.DeliveryStage)
}

func TestRefreshDeliveryProgressNeverRegresses(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{CreatedAt: created, DeliveryStage: 3}

	// An hour after creation the derived stage would be 1, but the stored
	// stage must not move backwards.
	changed := order.RefreshDeliveryProgress(created.Add(time.Hour))
	assert.False(t, changed)
	assert.Equal(t, 3, order.DeliveryStage)
}

func TestRefreshDeliveryProgressCancelResets(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{
		CreatedAt:     created,
		DeliveryStage: 3,
		DelayMessage:  true,
		IsCanceled:    true,
	}

	changed := order.RefreshDeliveryProgress(created.Add(96 * time.Hour))
	assert.True(t, changed)
	assert.Equal(t, 0, order.DeliveryStage)
	assert.False(t, order.DelayMessage)
}

func TestRefreshDeliveryProgressDelayFlag(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expected := created.AddDate(0, 0, ExpectedDeliveryDays)

	order := Order{CreatedAt: created, DeliveryStage: 1, ExpectedDeliveryDate: &expected}

	// Before the promised date nothing is flagged.
	order.RefreshDeliveryProgress(expected.Add(-time.Hour))
	assert.False(t, order.DelayMessage)

	// Past it, the flag is raised.
	order.RefreshDeliveryProgress(expected.Add(time.Hour))
	assert.True(t, order.DelayMessage)

	// Delivery clears it even when late.
	order.IsDelivered = true
	order.RefreshDeliveryProgress(expected.Add(2 * time.Hour))
	assert.False(t, order.DelayMessage)
	assert.Equal(t, 4, order.DeliveryStage)
}

func TestRefreshDeliveryProgressIdempotent(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(30 * time.Hour)

	order := Order{CreatedAt: created, DeliveryStage: 1}
	assert.True(t, order.RefreshDeliveryProgress(now))
	assert.False(t, order.RefreshDeliveryProgress(now))
}

func TestOrderShortID(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("65f1c0ffee0123456789abcd")
	assert.NoError(t, err)

	order := Order{ID: id}
	assert.Equal(t, "89abcd", order.ShortID())
}
