package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// PropietarioHandler maneja las peticiones HTTP de propietarios (protegido).
type PropietarioHandler struct {
	uc *usecase.PropietarioUseCase
}

// NewPropietarioHandler construye el handler.
func NewPropietarioHandler(uc *usecase.PropietarioUseCase) *PropietarioHandler {
	return &PropietarioHandler{uc: uc}
}

// Create POST /api/propietarios
func (h *PropietarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropietarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	propietario, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, dni (8 dígitos), fechaNacimiento y direccion son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un propietario con ese DNI"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(propietario)
}

// List GET /api/propietarios?limit=50&offset=0
func (h *PropietarioHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
