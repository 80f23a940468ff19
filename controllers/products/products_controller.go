package productController

import (
	"context"
	"strconv"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/syncservice"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

// GetAllProducts lists active products, newest first, with page/limit
// pagination and optional category and search filters.
func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 12
	}

	filter := bson.M{"isActive": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if search := c.Query("search"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	total, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return serverError(c, "Failed to count products")
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := productCollection.Find(ctx, filter, opts)
	if err != nil {
		return serverError(c, "Failed to fetch products")
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return serverError(c, "Failed to decode products")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched",
		Result: &fiber.Map{
			"products": products,
			"page":     page,
			"pages":    (total + int64(limit) - 1) / int64(limit),
			"total":    total,
		},
	})
}

func GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return serverError(c, "Failed to fetch product")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched",
		Result:  &fiber.Map{"product": product},
	})
}

// SyncProducts pulls the external catalog and upserts it into ours.
func SyncProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	result, err := syncservice.SyncProducts(ctx)
	if err != nil {
		return serverError(c, "Catalog sync failed")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Catalog synced",
		Result: &fiber.Map{
			"new":     result.NewCount,
			"updated": result.UpdatedCount,
		},
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
