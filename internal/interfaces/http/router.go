package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	Health     *HealthHandler
}

// Router registra las rutas de la API. Las rutas fijas de productos
// (low-stock, category) van antes que :id para que no las capture el parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", deps.Health.Live)
	app.Get("/health/db", deps.Health.DB)

	api := app.Group("/api")

	// Directorio de endpoints
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Online Shopping System API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"products":   "/api/products",
				"categories": "/api/categories",
			},
		})
	})

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id/stock", productHandler.CheckStock)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)

	// 404 terminal para cualquier ruta no registrada (se monta al final).
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.StatusResponse{
			Status:    "ERROR",
			Message:   "Endpoint not found",
			Path:      c.OriginalURL(),
			Method:    c.Method(),
			Timestamp: dto.NowISO(),
		})
	})
}
