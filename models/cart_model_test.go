package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeItemsSumsDuplicates(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	merged := MergeItems([]CartItem{
		{Product: a, Qty: 1},
		{Product: b, Qty: 2},
		{Product: a, Qty: 3},
	})

	assert.Len(t, merged, 2)
	assert.Equal(t, a, merged[0].Product)
	assert.Equal(t, 4, merged[0].Qty)
	assert.Equal(t, b, merged[1].Product)
	assert.Equal(t, 2, merged[1].Qty)
}

func TestMergeItemsPreservesOrder(t *testing.T) {
	ids := []primitive.ObjectID{
		primitive.NewObjectID(),
		primitive.NewObjectID(),
		primitive.NewObjectID(),
	}

	merged := MergeItems([]CartItem{
		{Product: ids[2], Qty: 1},
		{Product: ids[0], Qty: 1},
		{Product: ids[1], Qty: 1},
		{Product: ids[2], Qty: 1},
	})

	assert.Len(t, merged, 3)
	assert.Equal(t, ids[2], merged[0].Product)
	assert.Equal(t, ids[0], merged[1].Product)
	assert.Equal(t, ids[1], merged[2].Product)
}

func TestMergeItemsEmpty(t *testing.T) {
	assert.Empty(t, MergeItems(nil))
	assert.Empty(t, MergeItems([]CartItem{}))
}
