package adminController

import (
	"context"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/mlservice"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")
var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var validate = validator.New()

// GetAllOrders lists every order, newest first.
func GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := orderCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return serverError(c, "Failed to fetch orders")
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return serverError(c, "Failed to decode orders")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched",
		Result:  &fiber.Map{"orders": orders},
	})
}

var validOrderStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderProcessing: true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var reqBody struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if !validOrderStatuses[reqBody.Status] {
		return badRequest(c, "Invalid order status")
	}

	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": reqBody.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Order not found")
		}
		return serverError(c, "Failed to update order")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated",
		Result:  &fiber.Map{"order": updated},
	})
}

// AssignDeliveryPartner hands an order to a delivery-role user.
func AssignDeliveryPartner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var reqBody struct {
		PartnerID string `json:"partnerId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}

	partnerID, err := primitive.ObjectIDFromHex(reqBody.PartnerID)
	if err != nil {
		return badRequest(c, "Invalid partner ID format")
	}

	var partner models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": partnerID}).Decode(&partner); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Delivery partner not found")
		}
		return serverError(c, "Failed to fetch delivery partner")
	}
	if partner.Role != models.RoleDelivery {
		return badRequest(c, "User is not a delivery partner")
	}

	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"assignedTo": partnerID,
			"status":     models.OrderProcessing,
			"updatedAt":  time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Order not found")
		}
		return serverError(c, "Failed to assign order")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery partner assigned",
		Result:  &fiber.Map{"order": updated},
	})
}

func GetDeliveryPartners(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := userCollection.Find(ctx,
		bson.M{"role": models.RoleDelivery},
		options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return serverError(c, "Failed to fetch delivery partners")
	}

	partners := []models.User{}
	if err := cursor.All(ctx, &partners); err != nil {
		return serverError(c, "Failed to decode delivery partners")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery partners fetched",
		Result:  &fiber.Map{"partners": partners},
	})
}

/* back-office catalog */

type productRequest struct {
	Name              string  `json:"name" validate:"required"`
	Image             string  `json:"image"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category" validate:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"gte=0"`
	CountInStock      int     `json:"countInStock" validate:"gte=0"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	IsActive          *bool   `json:"isActive"`
}

func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	// Admin view includes inactive products.
	cursor, err := productCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
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
		Result:  &fiber.Map{"products": products},
	})
}

func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody productRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, err.Error())
	}

	isActive := true
	if reqBody.IsActive != nil {
		isActive = *reqBody.IsActive
	}
	threshold := reqBody.LowStockThreshold
	if threshold <= 0 {
		threshold = models.DefaultLowStockThreshold
	}

	now := time.Now()
	product := models.Product{
		ID:                primitive.NewObjectID(),
		ExternalID:        "admin-" + uuid.NewString(),
		Name:              reqBody.Name,
		Image:             reqBody.Image,
		Brand:             reqBody.Brand,
		Category:          reqBody.Category,
		Description:       reqBody.Description,
		Price:             reqBody.Price,
		CountInStock:      reqBody.CountInStock,
		LowStockThreshold: threshold,
		StockStatus:       models.StockStatusFor(reqBody.CountInStock, threshold),
		IsActive:          isActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := productCollection.InsertOne(ctx, product); err != nil {
		return serverError(c, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Product created",
		Result:  &fiber.Map{"product": product},
	})
}

func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product ID format")
	}

	var reqBody productRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, err.Error())
	}

	threshold := reqBody.LowStockThreshold
	if threshold <= 0 {
		threshold = models.DefaultLowStockThreshold
	}

	set := bson.M{
		"name":              reqBody.Name,
		"image":             reqBody.Image,
		"brand":             reqBody.Brand,
		"category":          reqBody.Category,
		"description":       reqBody.Description,
		"price":             reqBody.Price,
		"countInStock":      reqBody.CountInStock,
		"lowStockThreshold": threshold,
		"stockStatus":       models.StockStatusFor(reqBody.CountInStock, threshold),
		"updatedAt":         time.Now(),
	}
	if reqBody.IsActive != nil {
		set["isActive"] = *reqBody.IsActive
	}

	var updated models.Product
	if err := productCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": productID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Product not found")
		}
		return serverError(c, "Failed to update product")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated",
		Result:  &fiber.Map{"product": updated},
	})
}

func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product ID format")
	}

	res, err := productCollection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return serverError(c, "Failed to delete product")
	}
	if res.DeletedCount == 0 {
		return notFound(c, "Product not found")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted",
	})
}

/* analytics */

// GetAnalytics aggregates store-wide counters and paid revenue.
func GetAnalytics(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	totalOrders, err := orderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}
	deliveredOrders, err := orderCollection.CountDocuments(ctx, bson.M{"isDelivered": true})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}
	cancelledOrders, err := orderCollection.CountDocuments(ctx, bson.M{"isCanceled": true})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}
	totalUsers, err := userCollection.CountDocuments(ctx, bson.M{"role": models.RoleUser})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}
	totalPartners, err := userCollection.CountDocuments(ctx, bson.M{"role": models.RoleDelivery})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}
	totalProducts, err := productCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return serverError(c, "Failed to compute analytics")
	}

	pipeline := []bson.M{
		{"$match": bson.M{"isPaid": true}},
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$totalPrice"},
		}},
	}
	cursor, err := orderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return serverError(c, "Failed to compute revenue")
	}
	var revenueRows []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &revenueRows); err != nil {
		return serverError(c, "Failed to decode revenue")
	}
	revenue := 0.0
	if len(revenueRows) > 0 {
		revenue = revenueRows[0].Revenue
	}

	recentCursor, err := orderCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(5))
	if err != nil {
		return serverError(c, "Failed to fetch recent orders")
	}
	recentOrders := []models.Order{}
	if err := recentCursor.All(ctx, &recentOrders); err != nil {
		return serverError(c, "Failed to decode recent orders")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Analytics fetched",
		Result: &fiber.Map{
			"totalOrders":      totalOrders,
			"deliveredOrders":  deliveredOrders,
			"cancelledOrders":  cancelledOrders,
			"totalUsers":       totalUsers,
			"deliveryPartners": totalPartners,
			"totalProducts":    totalProducts,
			"revenue":          revenue,
			"recentOrders":     recentOrders,
		},
	})
}

// RetrainML forwards a retrain request to the recommendation service with the
// caller's token so the remote side can audit who triggered it.
func RetrainML(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	if err := mlservice.Retrain(ctx, c.Get("Authorization")); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(responses.APIResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Retrain request failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Retrain triggered",
	})
}

/* response helpers */

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
