package routes

import (
	paymentController "mystorx-api/controllers/payment"
	"mystorx-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/api/payment/initiate", middlewares.AuthMiddleware, paymentController.InitiatePayment)
	app.Get("/api/payment/verify/:orderId", middlewares.AuthMiddleware, paymentController.VerifyPayment)
	app.Post("/api/payment/confirm/:orderId", middlewares.AuthMiddleware, paymentController.ConfirmPayment)
}
