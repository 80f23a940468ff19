package orderController

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"mystorx-api/configs"
	"mystorx-api/middlewares"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/mailer"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

type orderItemRequest struct {
	Product string `json:"product"`
	Qty     int    `json:"qty"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
	Mobile          string             `json:"mobile"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// reservation records one successful stock decrement so it can be reversed.
type reservation struct {
	ProductID primitive.ObjectID
	Qty       int
}

// reserveStock atomically decrements a product's stock when enough is
// available. The single-document conditional update is the only
// synchronization primitive; there is no cross-document transaction.
func reserveStock(ctx context.Context, productID primitive.ObjectID, qty int) (bool, error) {
	result, err := productCollection.UpdateOne(ctx,
		bson.M{"_id": productID, "countInStock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"countInStock": -qty}},
	)
	if err != nil {
		return false, err
	}
	if result.ModifiedCount == 0 {
		return false, nil
	}
	syncStockStatus(ctx, productID)
	return true, nil
}

// releaseStock reverses prior reservations in reverse order (compensating
// rollback in lieu of a multi-document transaction; not crash-safe).
func releaseStock(ctx context.Context, reservations []reservation) {
	for i := len(reservations) - 1; i >= 0; i-- {
		r := reservations[i]
		if _, err := productCollection.UpdateOne(ctx,
			bson.M{"_id": r.ProductID},
			bson.M{"$inc": bson.M{"countInStock": r.Qty}},
		); err != nil {
			log.Printf("order: stock rollback failed for %s: %v", r.ProductID.Hex(), err)
			continue
		}
		syncStockStatus(ctx, r.ProductID)
	}
}

// syncStockStatus recomputes the derived stock-status enum after a stock
// count change.
func syncStockStatus(ctx context.Context, productID primitive.ObjectID) {
	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		return
	}
	status := models.StockStatusFor(product.CountInStock, product.LowStockThreshold)
	if status == product.StockStatus {
		return
	}
	_, _ = productCollection.UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$set": bson.M{"stockStatus": status, "updatedAt": time.Now()}},
	)
}

// CreateOrder reserves stock per line item, rolling every prior decrement
// back if any line fails, then persists the order snapshot and queues the
// confirmation email.
func CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	var reqBody createOrderRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}

	if len(reqBody.Items) == 0 {
		return badRequest(c, "No order items")
	}
	if strings.TrimSpace(reqBody.ShippingAddress) == "" {
		return badRequest(c, "Shipping address is required")
	}
	if strings.TrimSpace(reqBody.Mobile) == "" {
		return badRequest(c, "Mobile number is required")
	}
	if !mobileRegex.MatchString(reqBody.Mobile) {
		return badRequest(c, "Invalid mobile number format")
	}

	paymentMethod := reqBody.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.MethodCOD
	}
	switch paymentMethod {
	case models.MethodCOD, models.MethodQR, models.MethodCard:
	default:
		return badRequest(c, "Invalid payment method")
	}

	var (
		orderItems   []models.OrderItem
		reservations []reservation
		itemsPrice   float64
	)

	for _, line := range reqBody.Items {
		if line.Qty <= 0 {
			releaseStock(ctx, reservations)
			return badRequest(c, "Quantity must be positive")
		}

		productID, err := primitive.ObjectIDFromHex(line.Product)
		if err != nil {
			releaseStock(ctx, reservations)
			return badRequest(c, "Invalid product ID format")
		}

		var product models.Product
		if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			releaseStock(ctx, reservations)
			if err == mongo.ErrNoDocuments {
				return badRequest(c, fmt.Sprintf("Product not found: %s", line.Product))
			}
			return serverError(c, "Error fetching product")
		}

		reserved, err := reserveStock(ctx, productID, line.Qty)
		if err != nil {
			releaseStock(ctx, reservations)
			return serverError(c, "Error reserving stock")
		}
		if !reserved {
			releaseStock(ctx, reservations)
			// Re-read for the current count; it may have moved since the
			// failed conditional update.
			remaining := product.CountInStock
			if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err == nil {
				remaining = product.CountInStock
			}
			return badRequest(c, fmt.Sprintf("Insufficient stock for %s: only %d left", product.Name, remaining))
		}

		reservations = append(reservations, reservation{ProductID: productID, Qty: line.Qty})
		orderItems = append(orderItems, models.OrderItem{
			Name:    product.Name,
			Qty:     line.Qty,
			Image:   product.Image,
			Price:   product.Price,
			Product: productID,
		})
		itemsPrice += product.Price * float64(line.Qty)
	}

	shippingPrice := models.ShippingFor(itemsPrice)
	totalPrice := itemsPrice + shippingPrice

	now := time.Now()
	expectedDelivery := now.AddDate(0, 0, models.ExpectedDeliveryDays)

	order := models.Order{
		ID:                   primitive.NewObjectID(),
		User:                 user.Id,
		Items:                orderItems,
		ShippingAddress:      reqBody.ShippingAddress,
		Mobile:               reqBody.Mobile,
		PaymentMethod:        paymentMethod,
		ItemsPrice:           itemsPrice,
		ShippingPrice:        shippingPrice,
		TotalPrice:           totalPrice,
		Status:               models.OrderPending,
		ExpectedDeliveryDate: &expectedDelivery,
		DeliveryStage:        1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		releaseStock(ctx, reservations)
		return serverError(c, "Failed to create order")
	}

	mailer.SendOrderConfirmationEmail(user.Email, user.Name, &order)

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Order created successfully",
		Result:  &fiber.Map{"order": order},
	})
}

// GetMyOrders lists the caller's non-cancelled orders, newest first, with
// stages synced on the way out.
func GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	cursor, err := orderCollection.Find(ctx,
		bson.M{"user": user.Id, "isCanceled": false},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return serverError(c, "Failed to fetch orders")
	}

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return serverError(c, "Failed to decode orders")
	}

	for i := range orders {
		syncStages(ctx, &orders[i])
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// GetOrderById returns one of the caller's orders with stages synced.
func GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Order not found")
		}
		return serverError(c, "Failed to fetch order")
	}

	if order.User != user.Id {
		return forbidden(c, "Not authorized")
	}

	syncStages(ctx, &order)

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result:  &fiber.Map{"order": order},
	})
}

// CancelOrder soft-cancels a whole order, restores every line's stock, and
// notifies the customer and any assigned delivery partner.
func CancelOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var reqBody struct {
		Reason string `json:"reason"`
	}
	_ = c.BodyParser(&reqBody)

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Order not found")
		}
		return serverError(c, "Failed to fetch order")
	}

	if order.User != user.Id {
		return forbidden(c, "Not authorized")
	}
	if order.IsDelivered {
		return badRequest(c, "Delivered orders cannot be cancelled")
	}
	if order.IsCanceled {
		return badRequest(c, "Order already cancelled")
	}

	// Restore stock before flipping the flags; a restock failure is logged
	// and the cancellation still proceeds.
	for _, item := range order.Items {
		if _, err := productCollection.UpdateOne(ctx,
			bson.M{"_id": item.Product},
			bson.M{"$inc": bson.M{"countInStock": item.Qty}},
		); err != nil {
			log.Printf("cancel: restock failed for %s: %v", item.Product.Hex(), err)
			continue
		}
		syncStockStatus(ctx, item.Product)
	}

	reason := reqBody.Reason
	if reason == "" {
		reason = "User requested cancellation"
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isCanceled":    true,
		"cancelReason":  reason,
		"canceledAt":    now,
		"status":        models.OrderCancelled,
		"deliveryStage": 0,
		"delayMessage":  false,
		"updatedAt":     now,
	}}

	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		return serverError(c, "Failed to cancel order")
	}

	mailer.SendOrderCancelledEmail(user.Email, user.Name, &updated)

	if updated.AssignedTo != nil {
		var partner models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": *updated.AssignedTo}).Decode(&partner); err == nil {
			mailer.SendOrderCancelledEmail(partner.Email, partner.Name, &updated)
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order cancelled successfully and notifications sent",
		Result:  &fiber.Map{"order": updated},
	})
}

// PayOrder marks an order paid with a caller-supplied or synthesized
// payment result.
func PayOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var reqBody struct {
		TransactionID string `json:"transactionId"`
		Status        string `json:"status"`
		Method        string `json:"method"`
	}
	_ = c.BodyParser(&reqBody)

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Order not found")
		}
		return serverError(c, "Failed to fetch order")
	}

	if order.User != user.Id {
		return forbidden(c, "Not authorized")
	}
	if order.IsPaid {
		return badRequest(c, "Order already marked as paid")
	}

	transactionID := reqBody.TransactionID
	if transactionID == "" {
		transactionID = models.NewTransactionID()
	}
	status := reqBody.Status
	if status == "" {
		status = models.PaymentPaid
	}
	method := reqBody.Method
	if method == "" {
		method = order.PaymentMethod
	}

	now := time.Now()
	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"isPaid": true,
			"paidAt": now,
			"paymentResult": models.PaymentResult{
				TransactionID: transactionID,
				Status:        status,
				UpdateTime:    now.UTC().Format(time.RFC3339),
				Method:        method,
				Email:         user.Email,
			},
			"updatedAt": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		return serverError(c, "Failed to update order")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order marked as paid",
		Result:  &fiber.Map{"order": updated},
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

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
		Status:  fiber.StatusForbidden,
		Message: message,
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
