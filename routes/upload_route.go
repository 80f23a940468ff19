package routes

import (
	uploadController "mystorx-api/controllers/uploads"
	"mystorx-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	app.Get("/api/upload/signature", middlewares.AuthMiddleware, uploadController.GetSignature)
}
