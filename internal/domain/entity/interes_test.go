package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inmotek/inmobiliaria-api/internal/domain/entity"
)

func interesDe(id, clienteID string, secuencia int64) *entity.Interes {
	return &entity.Interes{ID: id, ClienteID: clienteID, Secuencia: secuencia}
}

func TestPrincipalInteres_UltimoDelCliente(t *testing.T) {
	intereses := []*entity.Interes{
		interesDe("i1", "c1", 1),
		interesDe("i2", "c2", 2),
		interesDe("i3", "c1", 3),
	}
	p := entity.PrincipalInteres("c1", intereses)
	assert.NotNil(t, p)
	assert.Equal(t, "i3", p.ID, "principal = el interés más reciente del cliente")
}

func TestPrincipalInteres_SinCoincidencias(t *testing.T) {
	intereses := []*entity.Interes{
		interesDe("i1", "c1", 1),
		interesDe("i2", "c2", 2),
	}
	assert.Nil(t, entity.PrincipalInteres("c9", intereses),
		"sin intereses del cliente el principal no está definido")
	assert.Nil(t, entity.PrincipalInteres("c1", nil))
}

func TestPrincipalInteres_SecuenciaMandaSobreOrden(t *testing.T) {
	// La colección puede llegar reordenada (el backend no garantiza el orden
	// de respuesta); la secuencia explícita decide.
	intereses := []*entity.Interes{
		interesDe("nuevo", "c1", 9),
		interesDe("viejo", "c1", 2),
	}
	p := entity.PrincipalInteres("c1", intereses)
	assert.Equal(t, "nuevo", p.ID)
}

func TestPrincipalInteres_EmpateGanaElUltimo(t *testing.T) {
	// Registros migrados sin secuencia (0): se conserva el comportamiento
	// histórico de "gana el último de la colección".
	intereses := []*entity.Interes{
		interesDe("a", "c1", 0),
		interesDe("b", "c1", 0),
		interesDe("c", "c2", 0),
	}
	p := entity.PrincipalInteres("c1", intereses)
	assert.Equal(t, "b", p.ID)
}
