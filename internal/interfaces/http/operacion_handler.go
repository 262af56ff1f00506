package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// OperacionHandler maneja las peticiones HTTP de operaciones cerradas (protegido).
type OperacionHandler struct {
	uc *usecase.OperacionUseCase
}

// NewOperacionHandler construye el handler.
func NewOperacionHandler(uc *usecase.OperacionUseCase) *OperacionHandler {
	return &OperacionHandler{uc: uc}
}

// Create POST /api/operaciones
func (h *OperacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	operacion, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado (Alta|Baja), fechas y asesor son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la propiedad o el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(operacion)
}

// List GET /api/operaciones?limit=50&offset=0
func (h *OperacionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
