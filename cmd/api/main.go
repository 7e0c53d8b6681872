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
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/stock-opname/docs"
	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	"github.com/jhoicas/stock-opname/internal/domain/repository"
	infrapdf "github.com/jhoicas/stock-opname/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-opname/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-opname/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/stock-opname/internal/interfaces/http"
	"github.com/jhoicas/stock-opname/pkg/config"
	"github.com/jhoicas/stock-opname/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Global: true,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("schema", cfg.Opname.Schema).
		Str("policy", cfg.Opname.ErrorPolicy).
		Bool("archive", cfg.DB.ArchiveEnabled).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	// Archivo de reportes: opcional. Sin él la API funciona en memoria.
	var archive repository.OpnameReportRepository
	if cfg.DB.ArchiveEnabled {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones del archivo de reportes")
		}
		archive = postgres.NewOpnameReportRepository(pool)
	}

	reportUC := appopname.NewReportUseCase(
		appopname.Config{
			CurrencySymbol:     cfg.Opname.CurrencySymbol,
			ThousandsSeparator: cfg.Opname.ThousandsSeparator,
			Schema:             cfg.Opname.Schema,
			Policy:             cfg.Opname.ErrorPolicy,
		},
		archive,
		infrapdf.NewMarotoReportGenerator(),
		xmlexport.NewEtreeEncoder(2),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Stock Opname API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, se sirve solo /docs/doc.json")
		app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
			doc, err := swag.ReadDoc()
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"archive": reportUC.ArchiveEnabled(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportUC:  reportUC,
		Logger:    log,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
