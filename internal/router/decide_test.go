package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santnier92/proyecto-gestion-viajes/internal/router"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want router.Key
	}{
		{name: "empty defaults to login", raw: "", want: router.KeyLogin},
		{name: "marker only defaults to login", raw: "#", want: router.KeyLogin},
		{name: "marker stripped", raw: "#dashboard", want: router.KeyDashboard},
		{name: "bare token accepted", raw: "register", want: router.KeyRegister},
		{name: "whitespace trimmed", raw: "  #login ", want: router.KeyLogin},
		{name: "unknown token preserved", raw: "#settings", want: router.Key("settings")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.NormalizeKey(tt.raw))
		})
	}
}

// TestDecide covers the full guard matrix: every key with and without a
// session.
func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		key          router.Key
		session      bool
		wantRedirect router.Key // zero value means "expect a render"
		wantView     router.View
	}{
		{name: "dashboard without session", key: router.KeyDashboard, session: false, wantRedirect: router.KeyLogin},
		{name: "itinerary without session", key: router.KeyItinerary, session: false, wantRedirect: router.KeyLogin},
		{name: "create-trip without session", key: router.KeyCreateTrip, session: false, wantRedirect: router.KeyLogin},
		{name: "dashboard with session", key: router.KeyDashboard, session: true, wantView: router.ViewDashboard},
		{name: "itinerary with session", key: router.KeyItinerary, session: true, wantView: router.ViewItinerary},
		{name: "create-trip with session", key: router.KeyCreateTrip, session: true, wantView: router.ViewCreateTrip},
		{name: "login without session", key: router.KeyLogin, session: false, wantView: router.ViewLogin},
		{name: "login with session", key: router.KeyLogin, session: true, wantRedirect: router.KeyDashboard},
		{name: "register without session", key: router.KeyRegister, session: false, wantView: router.ViewRegister},
		{name: "register with session", key: router.KeyRegister, session: true, wantView: router.ViewRegister},
		{name: "unknown key without session", key: "settings", session: false, wantView: router.ViewNotFound},
		{name: "unknown key with session", key: "settings", session: true, wantView: router.ViewNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := router.Decide(tt.key, tt.session)

			if tt.wantRedirect != "" {
				assert.True(t, d.Redirect, "expected a redirect")
				assert.Equal(t, tt.wantRedirect, d.Target)
			} else {
				assert.False(t, d.Redirect, "expected a render")
				assert.Equal(t, tt.wantView, d.View)
			}
		})
	}
}

// TestDecide_RedirectTargetsAreFixedPoints proves one redirect always
// reaches a stable state: applying Decide to its own redirect target, with
// the same session state, must render. This is what bounds Navigate at two
// evaluations.
func TestDecide_RedirectTargetsAreFixedPoints(t *testing.T) {
	for _, key := range []router.Key{
		router.KeyLogin, router.KeyRegister, router.KeyDashboard,
		router.KeyItinerary, router.KeyCreateTrip, "unknown",
	} {
		for _, session := range []bool{true, false} {
			d := router.Decide(key, session)
			if !d.Redirect {
				continue
			}
			second := router.Decide(d.Target, session)
			assert.False(t, second.Redirect,
				"key %q session=%v: redirect target %q must render", key, session, d.Target)
		}
	}
}
