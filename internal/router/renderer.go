package router

// Form names one input form a view can present.
type Form string

// The forms the application collects input from.
const (
	FormLogin      Form = "login-form"
	FormRegister   Form = "register-form"
	FormCreateTrip Form = "create-trip-form"
)

// Form field names, shared between FormReader implementations and handlers.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldTitle       = "trip-name"
	FieldDestination = "trip-destination"
	FieldStartDate   = "trip-start-date"
	FieldEndDate     = "trip-end-date"
)

// Renderer displays views and view-local messages. The router treats it as
// an opaque capability: how a view is actually drawn (templates, terminal
// text, a test recorder) is not the router's concern.
type Renderer interface {
	// Render replaces the current screen with the given view.
	Render(view View, data ViewData) error

	// DismissOverlay closes any transient overlay left over from a prior
	// state. It must be idempotent: calling it with no overlay open is a
	// no-op. The router calls it at the start of every navigation.
	DismissOverlay()

	// ShowFieldError displays a validation message next to the named field
	// of the current view, without replacing the view.
	ShowFieldError(view View, field, message string)

	// Notify shows a transient confirmation message (the alert analog).
	Notify(message string)
}

// FormReader collects the current values of a form's fields.
// Like Renderer, it is an opaque input capability.
type FormReader interface {
	// ReadForm returns the submitted field values of the named form,
	// keyed by field name.
	ReadForm(form Form) (map[string]string, error)
}
