// Comando backoffice: cliente de terminal del back-office inmobiliario.
// Reproduce el flujo de la aplicación web: evalúa la puerta de autorización
// en cada "navegación", inicia sesión si hace falta, refresca las colecciones
// contra el API y las muestra en tablas.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/inmotek/inmobiliaria-api/internal/application/dto"
	"github.com/inmotek/inmobiliaria-api/internal/domain"
	"github.com/inmotek/inmobiliaria-api/internal/session"
	"github.com/inmotek/inmobiliaria-api/pkg/config"
	"github.com/inmotek/inmobiliaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	api := session.NewHTTPClient(cfg.Session.APIBaseURL)
	cred := session.NewFileStorage(cfg.Session.CredencialesPath)
	store := session.NewStore(api, cred)
	guard := session.NewGuard(store, cred)

	ctx := context.Background()

	// Navegación al home: el guard decide si hay que pasar por /login.
	decision, err := guard.Evaluar(session.RutaHome)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluar sesión")
	}
	if !decision.Autorizado {
		if err := iniciarSesion(ctx, store); err != nil {
			log.Fatal().Err(err).Msg("iniciar sesión")
		}
		// Re-navegar: ahora el guard debe autorizar.
		decision, err = guard.Evaluar(session.RutaHome)
		if err != nil || !decision.Autorizado {
			log.Fatal().Err(err).Msg("sesión no autorizada tras login")
		}
	}

	u := store.Usuario()
	fmt.Printf("Sesión: %s <%s> (%s)\n\n", u.Nombre, u.Email, u.Rol)

	if err := mostrarPaneles(ctx, store, api); err != nil {
		log.Fatal().Err(err).Msg("refrescar colecciones")
	}
}

// iniciarSesion pide credenciales por stdin y hace login a través del Store.
func iniciarSesion(ctx context.Context, store *session.Store) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	u, err := store.Login(ctx, dto.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Bienvenido, %s.\n", u.Nombre)
	return nil
}

// mostrarPaneles refresca cada colección y la imprime, como las páginas del
// back-office web.
func mostrarPaneles(ctx context.Context, store *session.Store, api session.Collaborator) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	propietarios, err := store.RefreshPropietarios(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "PROPIETARIOS (%d)\n", len(propietarios))
	fmt.Fprintln(w, "Nombre\tDNI\tDirección")
	for _, p := range propietarios {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Nombre, p.DNI, p.Direccion)
	}
	fmt.Fprintln(w)

	propiedades, err := store.RefreshPropiedades(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "PROPIEDADES (%d)\n", len(propiedades))
	fmt.Fprintln(w, "Dirección\tTipo\tModalidad\tPrecio")
	for _, p := range propiedades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n", p.Direccion, p.Tipo, p.Modalidad, p.Moneda, p.Precio.StringFixed(0))
	}
	fmt.Fprintln(w)

	clientes, err := store.RefreshClientes(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "CLIENTES (%d)\n", len(clientes))
	fmt.Fprintln(w, "Nombre\tDNI\tInterés principal")
	for _, c := range clientes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Nombre, c.DNI, interesPrincipalDe(ctx, api, c.ID))
	}
	fmt.Fprintln(w)

	visitas, err := store.RefreshVisitas(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "VISITAS (%d)\n", len(visitas))
	fmt.Fprintln(w, "Fecha\tHora\tAsesor\tResultado")
	for _, v := range visitas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Fecha, v.HoraDisplay, v.Asesor, v.Resultado)
	}
	fmt.Fprintln(w)

	operaciones, err := store.RefreshOperaciones(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "OPERACIONES (%d)\n", len(operaciones))
	fmt.Fprintln(w, "Gestión\tEstado\tFecha\tPrecio final\tAsesor")
	for _, o := range operaciones {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.TipoGestion, o.Estado, o.FechaOperacion, o.PrecioFinal.StringFixed(0), o.Asesor)
	}
	fmt.Fprintln(w)

	seguimientos, err := store.RefreshSeguimientos(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "SEGUIMIENTOS (%d)\n", len(seguimientos))
	fmt.Fprintln(w, "Acción\tFecha\tRespuesta")
	for _, s := range seguimientos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.TipoAccion, s.Fecha, s.Respuesta)
	}

	return w.Flush()
}

// interesPrincipalDe resuelve la dirección de la propiedad de interés
// principal del cliente, o el estado vacío explícito.
func interesPrincipalDe(ctx context.Context, api session.Collaborator, clienteID string) string {
	interes, err := api.InteresPrincipal(ctx, clienteID)
	if err != nil {
		if errors.Is(err, domain.ErrSinInteres) {
			return "sin interés principal"
		}
		return "error: " + err.Error()
	}
	if interes.Propiedad != nil {
		return interes.Propiedad.Direccion
	}
	return interes.PropiedadID
}
