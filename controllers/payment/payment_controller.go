package paymentController

import (
	"context"
	"strings"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/mailer"
	"mystorx-api/services/upi"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var paymentCollection *mongo.Collection = configs.GetCollection(configs.DB, "payments")
var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")
var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

type cardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type initiateRequest struct {
	OrderID     string       `json:"orderId"`
	Amount      float64      `json:"amount"`
	Method      string       `json:"method"`
	CardDetails *cardDetails `json:"cardDetails"`
}

// InitiatePayment opens a new payment attempt for an order and deactivates
// every prior attempt, keeping at most one active payment per order.
func InitiatePayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody initiateRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}

	orderID, err := primitive.ObjectIDFromHex(reqBody.OrderID)
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

	if order.TotalPrice != reqBody.Amount {
		return badRequest(c, "Amount mismatch with order total")
	}

	method := strings.ToLower(reqBody.Method)
	switch method {
	case models.PayMethodQR, models.PayMethodCard, models.PayMethodCOD:
	default:
		return badRequest(c, "Invalid payment method")
	}

	now := time.Now()
	payment := models.Payment{
		ID:        primitive.NewObjectID(),
		Order:     orderID,
		User:      order.User,
		Amount:    reqBody.Amount,
		Method:    method,
		Status:    models.PaymentPending,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch method {
	case models.PayMethodQR:
		qrString := upi.BuildURI(configs.EnvUPIID(), configs.EnvUPIPayeeName(), reqBody.Amount, reqBody.OrderID)
		dataURL, err := upi.QRDataURL(qrString)
		if err != nil {
			return serverError(c, "Failed to generate QR code")
		}
		payment.QRCodeURL = dataURL

	case models.PayMethodCard:
		if reqBody.CardDetails == nil || reqBody.CardDetails.Number == "" ||
			reqBody.CardDetails.Expiry == "" || reqBody.CardDetails.CVV == "" {
			return badRequest(c, "Invalid or incomplete card details")
		}
		payment.CardLast4 = models.CardLast4(reqBody.CardDetails.Number)

	case models.PayMethodCOD:
		// COD settles at delivery; the order is confirmed now but stays unpaid.
		payment.Status = models.PaymentCODPending

		update := bson.M{"$set": bson.M{"paymentMethod": models.MethodCOD, "updatedAt": now}}
		if order.Status == models.OrderPending {
			update["$set"].(bson.M)["status"] = models.OrderProcessing
		}
		if _, err := orderCollection.UpdateOne(ctx, bson.M{"_id": orderID}, update); err != nil {
			return serverError(c, "Failed to update order")
		}

		var customer models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": order.User}).Decode(&customer); err == nil {
			mailer.SendOrderConfirmationEmail(customer.Email, customer.Name, &order)
		}
	}

	// Supersede older attempts before the new one is visible.
	if _, err := paymentCollection.UpdateMany(ctx,
		bson.M{"order": orderID},
		bson.M{"$set": bson.M{"active": false, "updatedAt": now}},
	); err != nil {
		return serverError(c, "Failed to supersede previous payments")
	}

	if _, err := paymentCollection.InsertOne(ctx, payment); err != nil {
		return serverError(c, "Failed to create payment")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Payment initiated",
		Result: &fiber.Map{
			"paymentId": payment.ID.Hex(),
			"qrCodeUrl": payment.QRCodeURL,
			"status":    payment.Status,
			"amount":    payment.Amount,
		},
	})
}

// VerifyPayment returns the state of the order's single active attempt.
func VerifyPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var payment models.Payment
	if err := paymentCollection.FindOne(ctx, bson.M{"order": orderID, "active": true}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "No active payment found")
		}
		return serverError(c, "Failed to fetch payment")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Payment fetched",
		Result:  &fiber.Map{"status": payment.Status},
	})
}

// ConfirmPayment settles the active QR/card attempt. Terminal states are
// rejected so confirmation stays idempotent-safe, and COD can only be
// resolved by the delivery flow.
func ConfirmPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return badRequest(c, "Invalid order ID format")
	}

	var payment models.Payment
	if err := paymentCollection.FindOne(ctx, bson.M{"order": orderID, "active": true}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Payment not found")
		}
		return serverError(c, "Failed to fetch payment")
	}

	switch payment.Status {
	case models.PaymentPaid:
		return badRequest(c, "Payment already confirmed")
	case models.PaymentFailed:
		return badRequest(c, "Payment failed, please initiate a new payment")
	case models.PaymentCODPending:
		return badRequest(c, "COD payment confirmed after delivery only")
	}

	if payment.Method != models.PayMethodQR && payment.Method != models.PayMethodCard {
		return badRequest(c, "Invalid payment method")
	}

	now := time.Now()
	transactionID := models.NewTransactionID()

	if _, err := paymentCollection.UpdateOne(ctx,
		bson.M{"_id": payment.ID},
		bson.M{"$set": bson.M{
			"status":        models.PaymentPaid,
			"transactionId": transactionID,
			"updatedAt":     now,
		}},
	); err != nil {
		return serverError(c, "Failed to update payment")
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err == nil {
		update := bson.M{
			"isPaid":        true,
			"paidAt":        now,
			"paymentMethod": payment.Method,
			"paymentResult": models.PaymentResult{
				TransactionID: transactionID,
				Status:        models.PaymentPaid,
				UpdateTime:    now.UTC().Format(time.RFC3339),
				Method:        payment.Method,
			},
			"updatedAt": now,
		}
		if order.Status == models.OrderPending {
			update["status"] = models.OrderProcessing
		}

		var updated models.Order
		if err := orderCollection.FindOneAndUpdate(ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated); err == nil {
			var customer models.User
			if err := userCollection.FindOne(ctx, bson.M{"_id": updated.User}).Decode(&customer); err == nil {
				mailer.SendOrderConfirmationEmail(customer.Email, customer.Name, &updated)
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Payment confirmed",
		Result:  &fiber.Map{"paymentStatus": models.PaymentPaid},
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
