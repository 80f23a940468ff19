package routes

import (
	deliveryController "mystorx-api/controllers/delivery"
	"mystorx-api/middlewares"
	"mystorx-api/models"

	"github.com/gofiber/fiber/v2"
)

func DeliveryRoutes(app *fiber.App) {
	app.Get("/api/delivery/my-orders", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionDeliverOrders), deliveryController.GetMyOrders)
	app.Put("/api/delivery/:id/deliver", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionDeliverOrders), deliveryController.DeliverOrder)
	app.Put("/api/delivery/:id/mark-paid", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionDeliverOrders), deliveryController.MarkPaid)
}
