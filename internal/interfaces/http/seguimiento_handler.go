package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// SeguimientoHandler maneja las peticiones HTTP de seguimientos (protegido).
type SeguimientoHandler struct {
	uc *usecase.SeguimientoUseCase
}

// NewSeguimientoHandler construye el handler.
func NewSeguimientoHandler(uc *usecase.SeguimientoUseCase) *SeguimientoHandler {
	return &SeguimientoHandler{uc: uc}
}

// Create POST /api/seguimientos
func (h *SeguimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSeguimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	seguimiento, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipoAccion (Llamada|WhatsApp|Correo|Reunion) y fecha son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente o la propiedad no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(seguimiento)
}

// List GET /api/seguimientos?limit=50&offset=0
func (h *SeguimientoHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
