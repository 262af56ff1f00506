// Package pdf implementa la generación de la ficha imprimible de una
// propiedad: datos del inmueble, datos del propietario y el historial de
// visitas registradas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dirección de la propiedad  │  Precio + Modalidad   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROPIEDAD: Tipo / Área / Área construida / Descripción     │
//	│  PROPIETARIO: Nombre + DNI + contacto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VISITAS: Fecha | Hora | Asesor | Resultado           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
	"github.com/inmotek/inmobiliaria-api/internal/domain/horario"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator implementa usecase.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerateFichaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerateFichaPDF(
	_ context.Context,
	p *entity.Propiedad,
	propietario *entity.Propietario,
	visitas []*entity.Visita,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Propiedad", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(propiedadRow(p))
	m.AddRows(propietarioRow(propietario))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(visitasHeaderRow(len(visitas)))
	if len(visitas) > 0 {
		m.AddRows(visitasTableHeaderRow())
		for _, r := range visitasRows(visitas) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: dirección (izq) y precio + modalidad (der).
func headerRow(p *entity.Propiedad) core.Row {
	precio := p.SimboloMoneda() + " " + formatMoney(p.Precio.StringFixed(0))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Direccion, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Tipo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE PROPIEDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(precio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Modalidad: "+p.Modalidad, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// propiedadRow: áreas y descripción del inmueble.
func propiedadRow(p *entity.Propiedad) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE LA PROPIEDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Área: %s m²   |   Área construida: %s m²",
				p.Area.StringFixed(0),
				p.AreaConstruida.StringFixed(0),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(nonEmpty(p.Descripcion, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// propietarioRow: datos del propietario del inmueble.
func propietarioRow(pr *entity.Propietario) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROPIETARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(pr.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("DNI: %s   |   Dirección: %s",
				pr.DNI,
				nonEmpty(pr.Direccion, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// visitasHeaderRow: título de la sección de visitas.
func visitasHeaderRow(total int) core.Row {
	titulo := fmt.Sprintf("HISTORIAL DE VISITAS (%d)", total)
	if total == 0 {
		titulo = "HISTORIAL DE VISITAS — sin visitas registradas"
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// visitasTableHeaderRow: cabecera de la tabla de visitas.
func visitasTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Hora", 2, align.Center),
		h("Asesor", 3, align.Left),
		h("Resultado", 5, align.Left),
	)
}

// visitasRows: una fila por visita, con la hora en formato de 12 horas.
func visitasRows(visitas []*entity.Visita) []core.Row {
	result := make([]core.Row, 0, len(visitas))
	for _, v := range visitas {
		hora, err := horario.Display12h(v.Hora)
		if err != nil {
			hora = v.Hora
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				v.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				hora,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				v.Asesor,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				v.Resultado,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
