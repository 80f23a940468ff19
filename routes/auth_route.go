package routes

import (
	authController "mystorx-api/controllers/auth"
	"mystorx-api/middlewares"
	"mystorx-api/models"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/register-delivery", authController.RegisterDelivery)
	app.Post("/api/auth/verify-otp", authController.VerifyOtp)
	app.Post("/api/auth/resend-otp", authController.ResendOtp)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/forgot-password", authController.ForgotPassword)
	app.Post("/api/auth/reset-password", authController.ResetPassword)

	app.Get("/api/auth/profile", middlewares.AuthMiddleware, authController.GetProfile)
	app.Get("/api/auth/profile/mini", middlewares.AuthMiddleware, authController.GetMiniProfile)
	app.Put("/api/auth/profile", middlewares.AuthMiddleware, authController.UpdateProfile)

	app.Put("/api/auth/users/:id", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageUsers), authController.AdminUpdateUser)
}
