package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/will-aam/stock/internal/application/auth"
	appcatalog "github.com/will-aam/stock/internal/application/catalog"
	appcounting "github.com/will-aam/stock/internal/application/counting"
	appexport "github.com/will-aam/stock/internal/application/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	ImportUC  *appcatalog.ImportUseCase
	SearchUC  *appcatalog.SearchUseCase
	CountUC   *appcounting.UseCase
	ExportUC  *appexport.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	products := protected.Group("/products")
	catalogHandler := NewCatalogHandler(deps.ImportUC, deps.SearchUC)
	products.Post("/import", catalogHandler.Import)
	products.Get("/search", catalogHandler.Search)
	products.Get("/", catalogHandler.List)

	// Conteo (protegido)
	counts := protected.Group("/counts")
	countHandler := NewCountHandler(deps.CountUC, deps.ExportUC)
	counts.Post("/scan", countHandler.Scan)
	counts.Post("/items", countHandler.AddItem)
	counts.Delete("/items/:id", countHandler.RemoveItem)
	counts.Get("/export", countHandler.Export)
	counts.Get("/", countHandler.Summary)
	counts.Delete("/", countHandler.Discard)
}
