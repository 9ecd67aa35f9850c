package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/will-aam/stock/docs"
	"github.com/will-aam/stock/internal/application/auth"
	appcatalog "github.com/will-aam/stock/internal/application/catalog"
	appcounting "github.com/will-aam/stock/internal/application/counting"
	appexport "github.com/will-aam/stock/internal/application/export"
	"github.com/will-aam/stock/internal/domain/repository"
	"github.com/will-aam/stock/internal/infrastructure/memory"
	"github.com/will-aam/stock/internal/infrastructure/postgres"
	"github.com/will-aam/stock/internal/infrastructure/report"
	httpRouter "github.com/will-aam/stock/internal/interfaces/http"
	"github.com/will-aam/stock/pkg/config"
	"github.com/will-aam/stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var catalogRepo repository.CatalogRepository
	var userRepo repository.UserRepository
	if cfg.Store.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		catalogRepo = postgres.NewCatalogRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	} else {
		// Comportamiento de referencia: todo en memoria.
		catalogRepo = memory.NewCatalogStore()
		userRepo = memory.NewUserStore()
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	importUC := appcatalog.NewImportUseCase(catalogRepo)
	searchUC := appcatalog.NewSearchUseCase(catalogRepo)
	countUC := appcounting.NewUseCase(catalogRepo)
	exportUC := appexport.NewUseCase(report.NewMarotoPDFGenerator(), report.NewExcelGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// La spec va embebida en el binario: el arranque no depende de archivos.
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.Spec,
		Path:        "docs",
		Title:       "Stock Count API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ImportUC:  importUC,
		SearchUC:  searchUC,
		CountUC:   countUC,
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
