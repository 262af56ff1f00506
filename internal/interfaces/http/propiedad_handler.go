package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/application/usecase"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
)

// PropiedadHandler maneja las peticiones HTTP de propiedades (protegido).
type PropiedadHandler struct {
	uc      *usecase.PropiedadUseCase
	fichaUC *usecase.FichaUseCase
}

// NewPropiedadHandler construye el handler.
func NewPropiedadHandler(uc *usecase.PropiedadUseCase, fichaUC *usecase.FichaUseCase) *PropiedadHandler {
	return &PropiedadHandler{uc: uc, fichaUC: fichaUC}
}

// Create POST /api/propiedades
func (h *PropiedadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropiedadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	propiedad, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direccion, precio, moneda (USD|PEN), tipo y modalidad son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PROPIETARIO_NOT_FOUND", Message: "el propietario no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(propiedad)
}

// List GET /api/propiedades?limit=50&offset=0
func (h *PropiedadHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/propiedades/:id
func (h *PropiedadHandler) GetByID(c *fiber.Ctx) error {
	propiedad, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(propiedad)
}

// DownloadFicha GET /api/propiedades/:id/ficha — descarga la ficha en PDF.
func (h *PropiedadHandler) DownloadFicha(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.fichaUC.DownloadFichaPDF(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
