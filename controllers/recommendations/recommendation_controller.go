package recommendationController

import (
	"context"
	"log"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/mlservice"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

const fallbackLimit = 4

// GetHomeRecommendations returns the storefront landing-page picks, falling
// back to the newest active products when the ML service has nothing.
func GetHomeRecommendations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	recs, err := mlservice.GetHomeRecommendations(ctx, c.Query("seed"), fallbackLimit)
	if err != nil {
		log.Printf("recommendations: ml service unavailable: %v", err)
	}

	products, err := resolveRecommendations(ctx, recs, nil)
	if err != nil {
		return serverError(c, "Failed to fetch recommendations")
	}

	if len(products) == 0 {
		cursor, err := productCollection.Find(ctx, bson.M{"isActive": true},
			options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(fallbackLimit))
		if err != nil {
			return serverError(c, "Failed to fetch recommendations")
		}
		if err := cursor.All(ctx, &products); err != nil {
			return serverError(c, "Failed to fetch recommendations")
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Recommendations fetched",
		Result:  &fiber.Map{"products": products},
	})
}

// GetProductRecommendations proxies the ML service for a product page.
// When the service is unreachable or empty, the latest products from the
// same category stand in.
func GetProductRecommendations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	externalID := c.Params("externalId")
	if externalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing product ID",
		})
	}

	recs, err := mlservice.GetProductRecommendations(ctx, externalID)
	if err != nil {
		log.Printf("recommendations: ml service unavailable: %v", err)
	}

	products, err := resolveRecommendations(ctx, recs, []string{externalID})
	if err != nil {
		return serverError(c, "Failed to fetch recommendations")
	}

	if len(products) == 0 {
		products, err = categoryFallback(ctx, []string{externalID})
		if err != nil {
			return serverError(c, "Failed to fetch recommendations")
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Recommendations fetched",
		Result:  &fiber.Map{"products": products},
	})
}

// GetCartRecommendations suggests cross-sell products for the cart contents.
func GetCartRecommendations(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		CartItems []string `json:"cartItems"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if len(reqBody.CartItems) == 0 {
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "Recommendations fetched",
			Result:  &fiber.Map{"products": []models.Product{}},
		})
	}

	recs, err := mlservice.GetCartRecommendations(ctx, reqBody.CartItems)
	if err != nil {
		log.Printf("recommendations: ml service unavailable: %v", err)
	}

	products, err := resolveRecommendations(ctx, recs, reqBody.CartItems)
	if err != nil {
		return serverError(c, "Failed to fetch recommendations")
	}

	if len(products) == 0 {
		products, err = categoryFallback(ctx, reqBody.CartItems)
		if err != nil {
			return serverError(c, "Failed to fetch recommendations")
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Recommendations fetched",
		Result:  &fiber.Map{"products": products},
	})
}

// resolveRecommendations maps ML picks back onto catalog documents, dropping
// anything we no longer stock and anything the caller already has.
func resolveRecommendations(ctx context.Context, recs []mlservice.Recommendation, exclude []string) ([]models.Product, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		if !excluded[rec.ExternalID] {
			ids = append(ids, rec.ExternalID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := productCollection.Find(ctx, bson.M{
		"externalId": bson.M{"$in": ids},
		"isActive":   true,
	})
	if err != nil {
		return nil, err
	}

	found := []models.Product{}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	// Keep the service's ranking order.
	byExternalID := make(map[string]models.Product, len(found))
	for _, p := range found {
		byExternalID[p.ExternalID] = p
	}
	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byExternalID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// categoryFallback returns the latest products from the dominant category of
// the seed items, excluding the seeds themselves.
func categoryFallback(ctx context.Context, seedExternalIDs []string) ([]models.Product, error) {
	cursor, err := productCollection.Find(ctx, bson.M{
		"externalId": bson.M{"$in": seedExternalIDs},
	})
	if err != nil {
		return nil, err
	}
	seeds := []models.Product{}
	if err := cursor.All(ctx, &seeds); err != nil {
		return nil, err
	}

	filter := bson.M{
		"isActive":   true,
		"externalId": bson.M{"$nin": seedExternalIDs},
	}
	if category := dominantCategory(seeds); category != "" {
		filter["category"] = category
	}

	cursor, err = productCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(fallbackLimit))
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func dominantCategory(products []models.Product) string {
	counts := map[string]int{}
	best := ""
	for _, p := range products {
		counts[p.Category]++
		if best == "" || counts[p.Category] > counts[best] {
			best = p.Category
		}
	}
	return best
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
