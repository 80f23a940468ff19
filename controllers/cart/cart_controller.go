package cartController

import (
	"context"
	"time"

	"mystorx-api/configs"
	"mystorx-api/middlewares"
	"mystorx-api/models"
	"mystorx-api/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var cartCollection *mongo.Collection = configs.GetCollection(configs.DB, "carts")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

// populatedItem pairs a cart line with the live product document.
type populatedItem struct {
	Product models.Product `json:"product"`
	Qty     int            `json:"qty"`
}

// populateItems resolves cart lines against the catalog and derives the
// total from current prices. Lines whose product vanished are skipped.
func populateItems(ctx context.Context, items []models.CartItem) ([]populatedItem, float64, error) {
	if len(items) == 0 {
		return []populatedItem{}, 0, nil
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Product)
	}

	cursor, err := productCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, 0, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	populated := make([]populatedItem, 0, len(items))
	var total float64
	for _, item := range items {
		product, ok := byID[item.Product]
		if !ok {
			continue
		}
		populated = append(populated, populatedItem{Product: product, Qty: item.Qty})
		total += product.Price * float64(item.Qty)
	}
	return populated, total, nil
}

func sendCartResponse(c *fiber.Ctx, ctx context.Context, cart *models.Cart) error {
	if cart == nil {
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "Cart fetched successfully",
			Result:  &fiber.Map{"items": []populatedItem{}, "totalPrice": 0},
		})
	}

	items, total, err := populateItems(ctx, cart.Items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Cart fetched successfully",
		Result:  &fiber.Map{"items": items, "totalPrice": total},
	})
}

// saveItems persists merged cart lines for the user, creating the singleton
// cart document on first write.
func saveItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	now := time.Now()
	merged := models.MergeItems(items)
	_, err := cartCollection.UpdateOne(ctx,
		bson.M{"user": userID},
		bson.M{
			"$set":         bson.M{"items": merged, "updatedAt": now},
			"$setOnInsert": bson.M{"user": userID, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func findCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := cartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the populated cart with the derived total.
func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	return sendCartResponse(c, ctx, cart)
}

// AddItem appends a line (or tops up an existing one) after checking the
// product exists.
func AddItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var reqBody struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if reqBody.Qty == 0 {
		reqBody.Qty = 1
	}
	if reqBody.Qty < 0 {
		return badRequest(c, "Quantity must be positive")
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product ID format")
	}

	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return serverError(c, "Error fetching product")
	}

	cart, err := findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}

	var items []models.CartItem
	if cart != nil {
		items = cart.Items
	}
	items = append(items, models.CartItem{Product: productID, Qty: reqBody.Qty})

	if err := saveItems(ctx, user.Id, items); err != nil {
		return serverError(c, "Failed to update cart")
	}

	cart, err = findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	return sendCartResponse(c, ctx, cart)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func UpdateQuantity(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return badRequest(c, "Invalid product ID format")
	}

	var reqBody struct {
		Qty *int `json:"qty"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Qty == nil {
		return badRequest(c, "Quantity must be a number")
	}

	cart, err := findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	if cart == nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	found := false
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == productID {
			found = true
			if *reqBody.Qty > 0 {
				item.Qty = *reqBody.Qty
				items = append(items, item)
			}
			continue
		}
		items = append(items, item)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not in cart",
		})
	}

	if err := saveItems(ctx, user.Id, items); err != nil {
		return serverError(c, "Failed to update cart")
	}

	cart, err = findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	return sendCartResponse(c, ctx, cart)
}

// RemoveItem drops a line entirely.
func RemoveItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return badRequest(c, "Invalid product ID format")
	}

	cart, err := findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	if cart == nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product != productID {
			items = append(items, item)
		}
	}

	if err := saveItems(ctx, user.Id, items); err != nil {
		return serverError(c, "Failed to update cart")
	}

	cart, err = findCart(ctx, user.Id)
	if err != nil {
		return serverError(c, "Error fetching cart")
	}
	return sendCartResponse(c, ctx, cart)
}

// ClearCart empties the cart; clearing a cart that never existed is fine.
func ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	if _, err := cartCollection.UpdateOne(ctx,
		bson.M{"user": user.Id},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}},
	); err != nil {
		return serverError(c, "Failed to clear cart")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
		Result:  &fiber.Map{"items": []populatedItem{}, "totalPrice": 0},
	})
}

/* response helpers */

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "User not found in request",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
