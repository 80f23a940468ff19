package middlewares

import (
	"context"
	"strings"
	"time"

	"mystorx-api/configs"
	"mystorx-api/models"
	"mystorx-api/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

// AuthMiddleware validates the bearer token and loads the account it names
// into Locals("user") / Locals("userId").
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "No auth token, access denied",
		})
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid authorization header format",
		})
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Token verification failed, access denied",
		})
	}

	userId, ok := (*claims)["id"].(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID in token",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading user",
		})
	}
	user.Password = ""

	c.Locals("userId", userId)
	c.Locals("user", &user)

	return c.Next()
}

// CurrentUser returns the account loaded by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}
