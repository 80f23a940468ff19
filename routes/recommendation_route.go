package routes

import (
	recommendationController "mystorx-api/controllers/recommendations"

	"github.com/gofiber/fiber/v2"
)

func RecommendationRoutes(app *fiber.App) {
	app.Get("/api/recommendations/home", recommendationController.GetHomeRecommendations)
	app.Get("/api/recommendations/product/:externalId", recommendationController.GetProductRecommendations)
	app.Post("/api/recommendations/cart", recommendationController.GetCartRecommendations)
}
