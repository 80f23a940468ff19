package deliveryController

import (
	"context"
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
var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")
var paymentCollection *mongo.Collection = configs.GetCollection(configs.DB, "payments")
var deliveredOrderCollection *mongo.Collection = configs.GetCollection(configs.DB, "deliveredorders")

// GetMyOrders lists orders assigned to the calling delivery partner.
func GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	partner, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	cursor, err := orderCollection.Find(ctx,
		bson.M{"assignedTo": partner.Id, "isCanceled": false},
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

// DeliverOrder completes the delivery. COD orders are auto-settled here and
// the archival copy of the order is written.
func DeliverOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	partner, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
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

	if order.AssignedTo == nil || *order.AssignedTo != partner.Id {
		return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
			Status:  fiber.StatusForbidden,
			Message: "Order is not assigned to you",
		})
	}
	if order.IsDelivered {
		return badRequest(c, "Order already delivered")
	}
	if order.IsCanceled {
		return badRequest(c, "Order is cancelled")
	}

	now := time.Now()
	set := bson.M{
		"isDelivered":   true,
		"deliveredAt":   now,
		"status":        models.OrderDelivered,
		"deliveryStage": 4,
		"delayMessage":  false,
		"updatedAt":     now,
	}

	// Cash changes hands at the doorstep for COD.
	if order.PaymentMethod == models.MethodCOD && !order.IsPaid {
		set["isPaid"] = true
		set["paidAt"] = now
		set["paymentResult"] = models.PaymentResult{
			Status:      models.PaymentPaid,
			UpdateTime:  now.UTC().Format(time.RFC3339),
			Method:      models.MethodCOD,
			ConfirmedBy: partner.Name,
		}

		if _, err := paymentCollection.UpdateOne(ctx,
			bson.M{"order": orderID, "active": true, "status": models.PaymentCODPending},
			bson.M{"$set": bson.M{"status": models.PaymentPaid, "updatedAt": now}},
		); err != nil {
			return serverError(c, "Failed to settle COD payment")
		}
	}

	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		return serverError(c, "Failed to update order")
	}

	var customer models.User
	customerFound := userCollection.FindOne(ctx, bson.M{"_id": updated.User}).Decode(&customer) == nil

	archiveOrder(ctx, &updated, &customer, partner)

	if customerFound {
		mailer.SendDeliveryEmail(customer.Email, customer.Name, &updated)
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order delivered",
		Result:  &fiber.Map{"order": updated},
	})
}

// MarkPaid records a doorstep cash collection without completing delivery.
func MarkPaid(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	partner, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
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

	if order.AssignedTo == nil || *order.AssignedTo != partner.Id {
		return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
			Status:  fiber.StatusForbidden,
			Message: "Order is not assigned to you",
		})
	}
	if order.PaymentMethod != models.MethodCOD {
		return badRequest(c, "Only COD orders can be marked paid on delivery")
	}
	if order.IsPaid {
		return badRequest(c, "Order already paid")
	}

	now := time.Now()
	var updated models.Order
	if err := orderCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"isPaid": true,
			"paidAt": now,
			"paymentResult": models.PaymentResult{
				Status:      models.PaymentPaid,
				UpdateTime:  now.UTC().Format(time.RFC3339),
				Method:      models.MethodCOD,
				ConfirmedBy: partner.Name,
			},
			"updatedAt": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated); err != nil {
		return serverError(c, "Failed to update order")
	}

	if _, err := paymentCollection.UpdateOne(ctx,
		bson.M{"order": orderID, "active": true, "status": models.PaymentCODPending},
		bson.M{"$set": bson.M{"status": models.PaymentPaid, "updatedAt": now}},
	); err != nil {
		return serverError(c, "Failed to settle COD payment")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order marked as paid",
		Result:  &fiber.Map{"order": updated},
	})
}

// archiveOrder writes the denormalized completed-order copy. Failures are
// logged by the driver and do not block delivery.
func archiveOrder(ctx context.Context, order *models.Order, customer *models.User, partner *models.User) {
	items := make([]models.DeliveredItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.DeliveredItem{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
			Image: item.Image,
		})
	}

	now := time.Now()
	archived := models.DeliveredOrder{
		ID:              primitive.NewObjectID(),
		OriginalOrderID: order.ID,
		User: models.DeliveredUser{
			ID:    customer.Id.Hex(),
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items:           items,
		ShippingAddress: order.ShippingAddress,
		Mobile:          order.Mobile,
		PaymentMethod:   order.PaymentMethod,
		TotalPrice:      order.TotalPrice,
		ItemsPrice:      order.ItemsPrice,
		ShippingPrice:   order.ShippingPrice,
		DeliveredAt:     order.DeliveredAt,
		AssignedTo: models.DeliveredPartner{
			ID:    partner.Id.Hex(),
			Name:  partner.Name,
			Email: partner.Email,
		},
		PaymentResult: order.PaymentResult,
		DeliveryStage: order.DeliveryStage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	deliveredOrderCollection.InsertOne(ctx, archived)
}

/* response helpers */

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Unauthorized",
	})
}

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
