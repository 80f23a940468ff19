package routes

import (
	cartController "mystorx-api/controllers/cart"
	"mystorx-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Get("/api/cart", middlewares.AuthMiddleware, cartController.GetCart)
	app.Post("/api/cart/add", middlewares.AuthMiddleware, cartController.AddItem)
	app.Put("/api/cart/:productId", middlewares.AuthMiddleware, cartController.UpdateQuantity)
	app.Delete("/api/cart/:productId", middlewares.AuthMiddleware, cartController.RemoveItem)
	app.Delete("/api/cart", middlewares.AuthMiddleware, cartController.ClearCart)
}
