package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/auth"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	PropietarioUC *usecase.PropietarioUseCase
	PropiedadUC   *usecase.PropiedadUseCase
	ClienteUC     *usecase.ClienteUseCase
	InteresUC     *usecase.InteresUseCase
	OperacionUC   *usecase.OperacionUseCase
	VisitaUC      *usecase.VisitaUseCase
	SeguimientoUC *usecase.SeguimientoUseCase
	FichaUC       *usecase.FichaUseCase
	JWTSecret     string
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

	// Cambio de contraseña (protegido)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Propietarios (protegido)
	propietarios := protected.Group("/propietarios")
	propietarioHandler := NewPropietarioHandler(deps.PropietarioUC)
	propietarios.Post("/", propietarioHandler.Create)
	propietarios.Get("/", propietarioHandler.List)

	// Propiedades (protegido)
	propiedades := protected.Group("/propiedades")
	propiedadHandler := NewPropiedadHandler(deps.PropiedadUC, deps.FichaUC)
	propiedades.Post("/", propiedadHandler.Create)
	propiedades.Get("/", propiedadHandler.List)
	propiedades.Get("/:id", propiedadHandler.GetByID)
	propiedades.Get("/:id/ficha", propiedadHandler.DownloadFicha)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.InteresUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id/interes-principal", clienteHandler.InteresPrincipal)

	// Intereses (protegido)
	intereses := protected.Group("/intereses")
	interesHandler := NewInteresHandler(deps.InteresUC)
	intereses.Post("/", interesHandler.Create)
	intereses.Get("/", interesHandler.List)

	// Operaciones (protegido)
	operaciones := protected.Group("/operaciones")
	operacionHandler := NewOperacionHandler(deps.OperacionUC)
	operaciones.Post("/", operacionHandler.Create)
	operaciones.Get("/", operacionHandler.List)

	// Visitas (protegido)
	visitas := protected.Group("/visitas")
	visitaHandler := NewVisitaHandler(deps.VisitaUC)
	visitas.Post("/", visitaHandler.Create)
	visitas.Get("/", visitaHandler.List)

	// Seguimientos (protegido)
	seguimientos := protected.Group("/seguimientos")
	seguimientoHandler := NewSeguimientoHandler(deps.SeguimientoUC)
	seguimientos.Post("/", seguimientoHandler.Create)
	seguimientos.Get("/", seguimientoHandler.List)
}
