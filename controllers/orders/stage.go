package orderController

import (
	"context"
	"time"

	"mystorx-api/models"

	"go.mongodb.org/mongo-driver/bson"
)

// syncStages refreshes the order's derived delivery fields and persists them
// only when a value actually moved, so reads stay write-free in the common
// case.
func syncStages(ctx context.Context, order *models.Order) {
	if order == nil {
		return
	}
	if !order.RefreshDeliveryProgress(time.Now()) {
		return
	}
	// Persistence is opportunistic; a failed write just means the next read
	// recomputes the same values.
	_, _ = orderCollection.UpdateOne(ctx,
		bson.M{"_id": order.ID},
		bson.M{"$set": bson.M{
			"deliveryStage": order.DeliveryStage,
			"delayMessage":  order.DelayMessage,
			"updatedAt":     time.Now(),
		}},
	)
}
