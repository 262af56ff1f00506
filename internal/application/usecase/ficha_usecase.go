package usecase

import (
	"context"
	"fmt"

	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/repository"
)

// FichaPDFGenerator genera la ficha imprimible de una propiedad.
type FichaPDFGenerator interface {
	GenerateFichaPDF(
		ctx context.Context,
		propiedad *entity.Propiedad,
		propietario *entity.Propietario,
		visitas []*entity.Visita,
	) ([]byte, error)
}

// FichaUseCase genera la ficha en PDF de una propiedad, con los datos del
// propietario y el historial de visitas.
type FichaUseCase struct {
	propiedadRepo   repository.PropiedadRepository
	propietarioRepo repository.PropietarioRepository
	visitaRepo      repository.VisitaRepository
	generator       FichaPDFGenerator
}

// NewFichaUseCase construye el caso de uso inyectando sus dependencias.
func NewFichaUseCase(
	propiedadRepo repository.PropiedadRepository,
	propietarioRepo repository.PropietarioRepository,
	visitaRepo repository.VisitaRepository,
	generator FichaPDFGenerator,
) *FichaUseCase {
	return &FichaUseCase{
		propiedadRepo:   propiedadRepo,
		propietarioRepo: propietarioRepo,
		visitaRepo:      visitaRepo,
		generator:       generator,
	}
}

// DownloadFichaPDF recupera la propiedad, su propietario y sus visitas, y
// genera la ficha.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la propiedad no existe.
func (uc *FichaUseCase) DownloadFichaPDF(
	ctx context.Context,
	propiedadID string,
) (pdfBytes []byte, filename string, err error) {
	p, err := uc.propiedadRepo.GetByID(propiedadID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener propiedad: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	propietario, err := uc.propietarioRepo.GetByID(p.PropietarioID)
	if err != nil || propietario == nil {
		return nil, "", fmt.Errorf("ficha: obtener propietario: %w", err)
	}

	visitas, err := uc.visitaRepo.ListByPropiedad(propiedadID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: listar visitas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateFichaPDF(ctx, p, propietario, visitas)
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf("ficha_%s.pdf", p.ID)
	return pdfBytes, filename, nil
}
