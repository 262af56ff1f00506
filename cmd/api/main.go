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

	"github.com/inmotek/inmobiliaria-api/internal/application/auth"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	infrapdf "github.com/inmotek/inmobiliaria-api/internal/infrastructure/pdf"
	"github.com/inmotek/inmobiliaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/inmotek/inmobiliaria-api/internal/interfaces/http"
	"github.com/inmotek/inmobiliaria-api/pkg/config"
	"github.com/inmotek/inmobiliaria-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	propietarioRepo := postgres.NewPropietarioRepository(pool)
	propiedadRepo := postgres.NewPropiedadRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	operacionRepo := postgres.NewOperacionRepository(pool)
	visitaRepo := postgres.NewVisitaRepository(pool)
	seguimientoRepo := postgres.NewSeguimientoRepository(pool)
	interesRepo := postgres.NewInteresRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	propietarioUC := usecase.NewPropietarioUseCase(propietarioRepo)
	propiedadUC := usecase.NewPropiedadUseCase(propiedadRepo, propietarioRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	interesUC := usecase.NewInteresUseCase(interesRepo, clienteRepo, propiedadRepo, txRunner)
	operacionUC := usecase.NewOperacionUseCase(operacionRepo, propiedadRepo, clienteRepo)
	visitaUC := usecase.NewVisitaUseCase(visitaRepo, clienteRepo, propiedadRepo)
	seguimientoUC := usecase.NewSeguimientoUseCase(seguimientoRepo, clienteRepo, propiedadRepo)

	// PDF: ficha imprimible de la propiedad
	fichaGenerator := infrapdf.NewMarotoFichaGenerator()
	fichaUC := usecase.NewFichaUseCase(propiedadRepo, propietarioRepo, visitaRepo, fichaGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inmobiliaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PropietarioUC: propietarioUC,
		PropiedadUC:   propiedadUC,
		ClienteUC:     clienteUC,
		InteresUC:     interesUC,
		OperacionUC:   operacionUC,
		VisitaUC:      visitaUC,
		SeguimientoUC: seguimientoUC,
		FichaUC:       fichaUC,
		JWTSecret:     cfg.JWT.Secret,
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
