// Package syncservice pulls the product catalog from the external source and
// upserts it into the products collection, keyed by externalId.
package syncservice

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"

	"github.com/go-resty/resty/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

var client = resty.New().SetTimeout(30 * time.Second)

// sourceProduct matches the external catalog's JSON shape.
type sourceProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Result reports what a sync run did.
type Result struct {
	NewCount     int `json:"newCount"`
	UpdatedCount int `json:"updatedCount"`
}

// SyncProducts fetches the external catalog and upserts every item. The
// source carries no stock figures, so new stock is randomized 1-20 the same
// way on every run.
func SyncProducts(ctx context.Context) (*Result, error) {
	var items []sourceProduct
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&items).
		Get(configs.EnvProductSourceURL())
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch catalog: status %d", resp.StatusCode())
	}

	result := &Result{}
	now := time.Now()

	for _, item := range items {
		externalID := strconv.Itoa(item.ID)
		countInStock := rand.Intn(20) + 1

		update := bson.M{
			"$set": bson.M{
				"name":         item.Title,
				"image":        item.Image,
				"brand":        "Generic",
				"category":     item.Category,
				"description":  item.Description,
				"price":        item.Price,
				"countInStock": countInStock,
				"stockStatus":  models.StockStatusFor(countInStock, models.DefaultLowStockThreshold),
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"externalId":        externalID,
				"lowStockThreshold": models.DefaultLowStockThreshold,
				"isActive":          true,
				"createdAt":         now,
			},
		}

		res, err := productCollection.UpdateOne(
			ctx,
			bson.M{"externalId": externalID},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("upsert product %s: %w", externalID, err)
		}
		if res.UpsertedCount > 0 {
			result.NewCount++
		} else {
			result.UpdatedCount++
		}
	}

	return result, nil
}
