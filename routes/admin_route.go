package routes

import (
	adminController "mystorx-api/controllers/admin"
	"mystorx-api/middlewares"
	"mystorx-api/models"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	app.Get("/api/admin/orders", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageOrders), adminController.GetAllOrders)
	app.Put("/api/admin/orders/:id/status", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageOrders), adminController.UpdateOrderStatus)
	app.Put("/api/admin/orders/:id/assign", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionAssignDelivery), adminController.AssignDeliveryPartner)
	app.Get("/api/admin/delivery", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionAssignDelivery), adminController.GetDeliveryPartners)

	app.Get("/api/admin/products", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageCatalog), adminController.GetAllProducts)
	app.Post("/api/admin/products", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageCatalog), adminController.AddProduct)
	app.Put("/api/admin/products/:id", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageCatalog), adminController.UpdateProduct)
	app.Delete("/api/admin/products/:id", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionManageCatalog), adminController.DeleteProduct)

	app.Get("/api/admin/superadmin/analytics", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionViewAnalytics), adminController.GetAnalytics)
	app.Post("/api/admin/ml/retrain", middlewares.AuthMiddleware,
		middlewares.Require(models.ActionRetrainML), adminController.RetrainML)
}
