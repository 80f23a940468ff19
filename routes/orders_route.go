package routes

import (
	deliveryController "mystorx-api/controllers/delivery"
	orderController "mystorx-api/controllers/orders"
	"mystorx-api/middlewares"
	"mystorx-api/models"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/orders", middlewares.AuthMiddleware, orderController.CreateOrder)
	app.Get("/api/orders/my", middlewares.AuthMiddleware, orderController.GetMyOrders)
	app.Get("/api/orders/:id", middlewares.AuthMiddleware, orderController.GetOrderById)
	app.Put("/api/orders/:id/cancel", middlewares.AuthMiddleware, orderController.CancelOrder)
	app.Put("/api/orders/:id/pay", middlewares.AuthMiddleware, orderController.PayOrder)

	// Delivery completion is always the partner-gated flow.
	app.Put("/api/orders/:id/deliver", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionDeliverOrders), deliveryController.DeliverOrder)
}
