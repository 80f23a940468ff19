package routes

import (
	productController "mystorx-api/controllers/products"
	"mystorx-api/middlewares"
	"mystorx-api/models"

	"github.com/gofiber/fiber/v2"
)

func ProductRoutes(app *fiber.App) {
	app.Get("/api/products", productController.GetAllProducts)
	app.Post("/api/products/sync", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionSyncCatalog), productController.SyncProducts)
	app.Get("/api/products/:id", productController.GetProductById)
}
