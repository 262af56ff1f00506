package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes compradores (protegido).
type ClienteHandler struct {
	uc        *usecase.ClienteUseCase
	interesUC *usecase.InteresUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, interesUC *usecase.InteresUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc, interesUC: interesUC}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, dni (8 dígitos), fechaNacimiento y direccion son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese DNI"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List GET /api/clientes?limit=50&offset=0
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// InteresPrincipal GET /api/clientes/:id/interes-principal
//
// Devuelve la propiedad de interés principal del cliente: el interés agregado
// más recientemente (mayor secuencia). 404 si el cliente no tiene intereses.
func (h *ClienteHandler) InteresPrincipal(c *fiber.Ctx) error {
	interes, err := h.interesUC.Principal(c.Params("id"))
	if err != nil {
		if err == domain.ErrSinInteres {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SIN_INTERES_PRINCIPAL", Message: "el cliente no tiene intereses registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(interes)
}
