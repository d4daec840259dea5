// Package router implements the navigation state machine: it maps navigation
// keys to views, guards protected views behind the session, and runs the view
// handlers that mutate data in response to form submissions.
package router

import "strings"

// View names one renderable screen.
type View string

// The complete set of views. ViewNotFound is the terminal fallback for
// unrecognized keys and failed itinerary lookups.
const (
	ViewLogin      View = "login"
	ViewRegister   View = "register"
	ViewDashboard  View = "dashboard"
	ViewItinerary  View = "itinerary"
	ViewCreateTrip View = "create-trip"
	ViewNotFound   View = "not-found"
)

// Key is a normalized navigation token (no leading route marker).
type Key string

// The navigation vocabulary.
const (
	KeyLogin      Key = "login"
	KeyRegister   Key = "register"
	KeyDashboard  Key = "dashboard"
	KeyItinerary  Key = "itinerary"
	KeyCreateTrip Key = "create-trip"
)

// NormalizeKey turns a raw navigation token into a Key: the "#" route marker
// is stripped and an empty token defaults to login, mirroring a fresh page
// load with no fragment.
func NormalizeKey(raw string) Key {
	k := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if k == "" {
		return KeyLogin
	}
	return Key(k)
}

// Protected reports whether the key requires an active session.
func (k Key) Protected() bool {
	switch k {
	case KeyDashboard, KeyItinerary, KeyCreateTrip:
		return true
	}
	return false
}

// viewFor maps a key to its view. Unknown keys land on the not-found view.
func viewFor(k Key) View {
	switch k {
	case KeyLogin:
		return ViewLogin
	case KeyRegister:
		return ViewRegister
	case KeyDashboard:
		return ViewDashboard
	case KeyItinerary:
		return ViewItinerary
	case KeyCreateTrip:
		return ViewCreateTrip
	}
	return ViewNotFound
}

// Decision is the outcome of one guard evaluation: either render a view or
// redirect to another key.
type Decision struct {
	// Redirect is true when the navigation must be retargeted to Target
	// instead of rendering.
	Redirect bool

	// Target is the key to navigate to when Redirect is true.
	Target Key

	// View is the view to render when Redirect is false.
	View View
}

// Decide applies the auth guards to a requested key. It is pure: the entire
// transition policy in one testable function.
//
// The two guards are mutually exclusive — the first fires only without a
// session, the second only with one — and each redirect target is a fixed
// point of Decide, so applying it to its own redirect target always renders.
// One external navigation therefore needs at most two evaluations.
func Decide(requested Key, sessionPresent bool) Decision {
	if requested.Protected() && !sessionPresent {
		return Decision{Redirect: true, Target: KeyLogin}
	}
	if requested == KeyLogin && sessionPresent {
		return Decision{Redirect: true, Target: KeyDashboard}
	}
	return Decision{View: viewFor(requested)}
}
