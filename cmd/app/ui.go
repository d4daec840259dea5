package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/router"
)

// terminalUI is the stand-in for the browser: it renders views as text on
// stdout and collects form input by prompting on stdin. It implements both
// router.Renderer and router.FormReader.
type terminalUI struct {
	in  *bufio.Scanner
	out io.Writer

	// lastTrips remembers the dashboard list so "open N" can resolve the
	// N-th card to a trip id.
	lastTrips []domain.Trip
}

func newTerminalUI(in io.Reader, out io.Writer) *terminalUI {
	return &terminalUI{in: bufio.NewScanner(in), out: out}
}

// Render draws the view as a block of text followed by the commands it binds.
func (u *terminalUI) Render(view router.View, data router.ViewData) error {
	fmt.Fprintf(u.out, "\n=== %s ===\n", view)

	switch view {
	case router.ViewLogin:
		fmt.Fprintln(u.out, "Inicia sesión para continuar.")
		fmt.Fprintln(u.out, "[login] enviar formulario  [register] crear cuenta")

	case router.ViewRegister:
		fmt.Fprintln(u.out, "Crea tu cuenta.")
		fmt.Fprintln(u.out, "[register] enviar formulario  [login] volver")

	case router.ViewDashboard:
		u.lastTrips = data.Trips
		fmt.Fprintln(u.out, data.Welcome)
		if len(data.Trips) == 0 {
			fmt.Fprintln(u.out, "Aún no tienes viajes. ¡Crea el primero!")
		}
		for i, t := range data.Trips {
			fmt.Fprintf(u.out, "  %d. %s (%s) %s\n", i+1, t.Title, t.Destination, t.Dates())
		}
		fmt.Fprintln(u.out, "[new] añadir viaje  [open N] ver itinerario  [logout] salir")

	case router.ViewItinerary:
		if data.Trip != nil {
			fmt.Fprintf(u.out, "%s\n%s\n%s\n", data.Trip.Title, data.Trip.Destination, data.Trip.Dates())
		}
		fmt.Fprintln(u.out, "[back] volver al panel")

	case router.ViewCreateTrip:
		fmt.Fprintln(u.out, "Nuevo viaje.")
		fmt.Fprintln(u.out, "[create] enviar formulario  [close] cancelar")

	case router.ViewNotFound:
		fmt.Fprintln(u.out, "Error 404: Página no encontrada")
		fmt.Fprintln(u.out, "[go login] volver al inicio")
	}
	return nil
}

// DismissOverlay is a no-op: rendering always replaces the whole screen, so
// there is never a stale overlay to close.
func (u *terminalUI) DismissOverlay() {}

// ShowFieldError prints the validation message under the offending field.
func (u *terminalUI) ShowFieldError(_ router.View, field, message string) {
	fmt.Fprintf(u.out, "  ! %s: %s\n", field, message)
}

// Notify prints a transient confirmation line.
func (u *terminalUI) Notify(message string) {
	fmt.Fprintf(u.out, "  * %s\n", message)
}

// formFields lists, in prompt order, the fields of each form.
var formFields = map[router.Form][]string{
	router.FormLogin:      {router.FieldEmail, router.FieldPassword},
	router.FormRegister:   {router.FieldName, router.FieldEmail, router.FieldPassword},
	router.FormCreateTrip: {router.FieldTitle, router.FieldDestination, router.FieldStartDate, router.FieldEndDate},
}

// ReadForm prompts for each field of the form and returns the entered values.
func (u *terminalUI) ReadForm(form router.Form) (map[string]string, error) {
	fields, ok := formFields[form]
	if !ok {
		return nil, fmt.Errorf("unknown form %q", form)
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		fmt.Fprintf(u.out, "%s> ", f)
		if !u.in.Scan() {
			return nil, io.EOF
		}
		values[f] = strings.TrimSpace(u.in.Text())
	}
	return values, nil
}

// runShell reads commands and dispatches them to the router until EOF or
// "quit". Validation errors have already been shown to the user by the
// renderer, so they are only logged at debug here.
func runShell(ctx context.Context, rt *router.Router, ui *terminalUI) {
	for {
		fmt.Fprint(ui.out, "\n> ")
		if !ui.in.Scan() {
			return
		}
		line := strings.TrimSpace(ui.in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")

		var err error
		switch cmd {
		case "quit", "exit":
			return
		case "go":
			err = rt.Navigate(ctx, arg)
		case "login":
			if rt.Current() == router.ViewLogin {
				err = rt.SubmitLogin(ctx)
			} else {
				err = rt.Navigate(ctx, string(router.KeyLogin))
			}
		case "register":
			if rt.Current() == router.ViewRegister {
				err = rt.SubmitRegister(ctx)
			} else {
				err = rt.Navigate(ctx, string(router.KeyRegister))
			}
		case "logout":
			err = rt.Logout(ctx)
		case "new":
			err = rt.Navigate(ctx, string(router.KeyCreateTrip))
		case "create":
			err = rt.SubmitCreateTrip(ctx)
		case "close", "back":
			err = rt.Navigate(ctx, string(router.KeyDashboard))
		case "open":
			err = openTrip(ctx, rt, ui, arg)
		default:
			fmt.Fprintf(ui.out, "Comando desconocido: %s\n", cmd)
		}

		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				slog.DebugContext(ctx, "input rejected", "error", err)
				continue
			}
			slog.ErrorContext(ctx, "command failed", "command", cmd, "error", err)
		}
	}
}

// openTrip resolves "open N" against the last rendered dashboard list.
func openTrip(ctx context.Context, rt *router.Router, ui *terminalUI, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(ui.lastTrips) {
		fmt.Fprintln(ui.out, "Indica el número de un viaje de la lista.")
		return nil
	}
	return rt.SelectTrip(ctx, ui.lastTrips[n-1].ID)
}
