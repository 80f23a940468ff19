package main

import (
	"log"

	"mystorx-api/configs"
	"mystorx-api/responses"
	"mystorx-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: configs.EnvFrontendURL(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if err := configs.EnsureIndexes(configs.DB); err != nil {
		log.Printf("index setup: %v", err)
	}

	routes.AuthRoutes(app)
	routes.CartRoutes(app)
	routes.OrderRoutes(app)
	routes.PaymentRoutes(app)
	routes.ProductRoutes(app)
	routes.AdminRoutes(app)
	routes.DeliveryRoutes(app)
	routes.RecommendationRoutes(app)
	routes.UploadRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Route not found",
		})
	})

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
