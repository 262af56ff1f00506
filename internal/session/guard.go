package session

// Rutas del back-office.
const (
	RutaLogin    = "/login"
	RutaRegistro = "/registro"
	RutaHome     = "/"
)

// rutasPublicas: accesibles sin sesión (login y registro).
var rutasPublicas = map[string]bool{
	RutaLogin:    true,
	RutaRegistro: true,
}

// Decision es el resultado terminal de evaluar una navegación: exactamente
// una de las dos cosas, nunca ambas.
type Decision struct {
	Autorizado bool
	RedirigirA string // vacío cuando Autorizado
}

// Guard es la puerta de autorización. Se evalúa en cada cambio de ruta, no
// solo al arrancar el proceso: el flag en memoria no sobrevive un arranque
// pero las credenciales persistidas sí.
type Guard struct {
	store *Store
	cred  CredencialStorage
}

// NewGuard construye el guard sobre el Store y su storage de credenciales.
func NewGuard(store *Store, cred CredencialStorage) *Guard {
	return &Guard{store: store, cred: cred}
}

// Evaluar corre las transiciones en orden; gana la primera que aplica:
//
//  1. Sin token persistido y ruta privada → redirigir a /login.
//  2. Token persistido y ruta pública → redirigir a /.
//  3. Token persistido sin usuario persistido → sesión rota: logout forzado
//     y redirigir a /login.
//  4. Token y usuario persistidos con el flag en memoria apagado →
//     reconciliar (reponer usuario y flag desde disco) y autorizar.
//  5. En cualquier otro caso → autorizar.
func (g *Guard) Evaluar(ruta string) (Decision, error) {
	token, usuario, err := g.cred.Cargar()
	if err != nil {
		return Decision{}, err
	}

	if token == "" && !rutasPublicas[ruta] {
		return Decision{RedirigirA: RutaLogin}, nil
	}
	if token != "" && rutasPublicas[ruta] {
		return Decision{RedirigirA: RutaHome}, nil
	}
	if token != "" && usuario == nil {
		// Crash entre "persistir token" y "persistir usuario" durante un
		// login, o storage manipulado. No se trata como autenticado.
		if err := g.store.Logout(); err != nil {
			return Decision{}, err
		}
		return Decision{RedirigirA: RutaLogin}, nil
	}
	if token != "" && usuario != nil && !g.store.Autenticado() {
		g.store.reconciliar(token, usuario)
	}
	return Decision{Autorizado: true}, nil
}
