package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// InteresHandler maneja las peticiones HTTP de intereses (protegido).
type InteresHandler struct {
	uc *usecase.InteresUseCase
}

// NewInteresHandler construye el handler.
func NewInteresHandler(uc *usecase.InteresUseCase) *InteresHandler {
	return &InteresHandler{uc: uc}
}

// Create POST /api/intereses
func (h *InteresHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInteresRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	interes, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clienteId y propiedadId son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente o la propiedad no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(interes)
}

// List GET /api/intereses?limit=50&offset=0
func (h *InteresHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
