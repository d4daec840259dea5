package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/repo"
	"github.com/santnier92/proyecto-gestion-viajes/internal/session"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// ViewData carries everything a Renderer needs to draw a view. Only the
// fields relevant to the view being rendered are populated.
type ViewData struct {
	// Welcome is the dashboard greeting, built from the session name.
	Welcome string

	// Trips is the dashboard list: the current user's trips in insertion order.
	Trips []domain.Trip

	// Trip is the itinerary detail.
	Trip *domain.Trip
}

// Router is the navigation state machine. Every navigation event — an
// external key change or a handler-triggered redirect — goes through
// Navigate, which applies the auth guards and renders exactly one view.
//
// All state the router consults lives in its dependencies; the only thing it
// keeps for itself is the currently rendered view.
type Router struct {
	users    repo.UserRepo
	trips    repo.TripRepo
	sessions *session.Manager
	handoff  storage.Store
	renderer Renderer
	forms    FormReader
	log      *slog.Logger

	current View
}

// New wires a Router. handoff must be the volatile store: it carries the
// selected trip id from the dashboard to the itinerary view.
func New(
	users repo.UserRepo,
	trips repo.TripRepo,
	sessions *session.Manager,
	handoff storage.Store,
	renderer Renderer,
	forms FormReader,
	log *slog.Logger,
) *Router {
	return &Router{
		users:    users,
		trips:    trips,
		sessions: sessions,
		handoff:  handoff,
		renderer: renderer,
		forms:    forms,
		log:      log,
	}
}

// Current returns the most recently rendered view. Before the first
// Navigate it is the zero View.
func (r *Router) Current() View {
	return r.current
}

// Navigate processes one navigation event: normalize the key, dismiss any
// leftover overlay, apply the guards, and render the resulting view.
//
// A guard redirect re-evaluates the decision once with the new key. Decide's
// guards guarantee the second evaluation renders, so the loop is bounded at
// two — never unbounded recursion.
func (r *Router) Navigate(ctx context.Context, raw string) error {
	key := NormalizeKey(raw)
	r.renderer.DismissOverlay()

	present, err := r.sessionPresent(ctx)
	if err != nil {
		return fmt.Errorf("router.Navigate: %w", err)
	}

	d := Decide(key, present)
	if d.Redirect {
		r.log.DebugContext(ctx, "redirecting", "from", string(key), "to", string(d.Target))
		key = d.Target
		d = Decide(key, present)
	}
	if d.Redirect {
		// Unreachable: both redirect targets are fixed points of Decide.
		return fmt.Errorf("router.Navigate: redirect loop at %q", key)
	}

	return r.render(ctx, d.View)
}

// sessionPresent reports whether a session exists, swallowing the
// no-session sentinel.
func (r *Router) sessionPresent(ctx context.Context) (bool, error) {
	_, err := r.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// render assembles the view's data and hands it to the Renderer, then
// records the view as current.
func (r *Router) render(ctx context.Context, view View) error {
	var data ViewData

	switch view {
	case ViewDashboard:
		sess, err := r.sessions.Current(ctx)
		if err != nil {
			return fmt.Errorf("router.render: %w", err)
		}
		trips, err := r.trips.ListByUser(ctx, sess.Email)
		if err != nil {
			return fmt.Errorf("router.render: %w", err)
		}
		data.Welcome = fmt.Sprintf(MsgWelcome, sess.Name)
		data.Trips = trips

	case ViewItinerary:
		trip, err := r.selectedTrip(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// No selection or a stale id: fall back to the terminal
				// not-found view rather than an empty itinerary.
				view = ViewNotFound
				break
			}
			return fmt.Errorf("router.render: %w", err)
		}
		data.Trip = &trip
	}

	if err := r.renderer.Render(view, data); err != nil {
		return fmt.Errorf("router.render: %w", err)
	}
	r.current = view
	return nil
}

// selectedTrip resolves the cross-view handoff: the trip id written by
// SelectTrip on the dashboard. The lookup searches the whole trip
// collection, not just the session owner's trips.
func (r *Router) selectedTrip(ctx context.Context) (domain.Trip, error) {
	raw, err := r.handoff.Get(ctx, storage.KeySelectedTripID)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	id, err := uuid.Parse(string(raw))
	if err != nil {
		return domain.Trip{}, domain.ErrNotFound
	}
	return r.trips.GetByID(ctx, id)
}
